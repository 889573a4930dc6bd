package ui

import (
	"testing"
)

func TestBgStyleRenderKeepsSpacing(t *testing.T) {
	bg := NewBgStyle("#282A36")
	styles := defaultTheme().Styles()

	cases := map[string]string{
		"single":       "single",
		"two words":    "two words",
		"gap  doubled": "gap  doubled",
		" lead":        " lead",
		"trail ":       "trail ",
		"":             "",
	}
	for input, want := range cases {
		if got := bg.Render(input, styles.Text); got != want {
			t.Fatalf("Render(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBgStyleHelpers(t *testing.T) {
	bg := NewBgStyle("#282A36")

	if got := bg.Space(); got != " " {
		t.Fatalf("Space() = %q, want single space", got)
	}
	if got := bg.Spaces(3); got != "   " {
		t.Fatalf("Spaces(3) = %q, want three spaces", got)
	}
	if got := bg.Spaces(0); got != "" {
		t.Fatalf("Spaces(0) = %q, want empty string", got)
	}
	if got := bg.Join([]string{"a", "b", "c"}, "•"); got != "a•b•c" {
		t.Fatalf("Join = %q, want a•b•c", got)
	}
	if got := bg.FillLine("abc", 6); got != "abc   " {
		t.Fatalf("FillLine = %q, want content padded to width 6", got)
	}
}

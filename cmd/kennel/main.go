package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pupbowl/kennel/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// An optional .env in the working directory feeds the KENNEL_* overrides
	_ = godotenv.Load()

	configPath := flag.String("config", "", "override kennel config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	apiURL := flag.String("api", "", "override players API base URL (optional)")
	pollSeconds := flag.Int("poll", 0, "roster refresh interval in seconds (optional)")
	logFile := flag.String("log", "", "override diagnostics log file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		APIURL:     *apiURL,
		LogFile:    *logFile,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "kennel: %v\n", err)
		return 1
	}
	return 0
}

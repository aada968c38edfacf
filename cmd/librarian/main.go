package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/openshelf/library-circulation-go/circulation"
	"github.com/openshelf/library-circulation-go/journal"
	"github.com/openshelf/library-circulation-go/shell"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevelFromEnv(),
	}))

	activity := journal.New(journalCapacityFromEnv())

	desk := circulation.NewDesk(
		circulation.WithLogger(logger),
		circulation.WithJournal(activity),
	)

	session := shell.NewSession(desk, activity, os.Stdin, os.Stdout)

	session.RunIntake()

	patron, ok := session.Login()
	if !ok {
		return // failed authentication ends the session, exit code 0
	}

	session.Run(patron)
}

// logLevelFromEnv reads LOG_LEVEL (debug, info, warn, error), default info.
func logLevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// journalCapacityFromEnv reads JOURNAL_CAPACITY, default journal.DefaultCapacity.
func journalCapacityFromEnv() int {
	raw := os.Getenv("JOURNAL_CAPACITY")
	if raw == "" {
		return journal.DefaultCapacity
	}

	capacity, err := strconv.Atoi(raw)
	if err != nil {
		return journal.DefaultCapacity
	}

	return capacity
}

package logger

import (
	"log/slog"
	"os"
)

// Log starts as the slog default so packages can log before Init runs
// (tests, early startup failures). Init swaps in the JSON handler.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}

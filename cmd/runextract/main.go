// runextract runs the extraction pipeline against a local PDF without going
// through storage or the HTTP server. Useful for prompt and schema changes.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/starboard-ai/deal-overview/internal/gemini"
	"github.com/starboard-ai/deal-overview/internal/property"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <path-to-pdf>")
		os.Exit(2)
	}
	if os.Getenv("GEMINI_API_KEY") == "" {
		logger.Error("GEMINI_API_KEY env var is required")
		os.Exit(2)
	}

	pdf, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read pdf", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := gemini.NewClient(gemini.Config{}, logger)

	start := time.Now()
	raw, err := client.ExtractOfferingMemorandum(ctx, pdf)
	if err != nil {
		logger.Error("extract failed", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	var extracted property.ExtractedRecord
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		logger.Error("model output is not valid JSON", "error", err)
		fmt.Println(raw)
		os.Exit(1)
	}

	record := property.Normalize(extracted, os.Args[1], time.Now())
	out, _ := json.MarshalIndent(record, "", "  ")
	fmt.Println(string(out))
}

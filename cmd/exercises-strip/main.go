package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/claude/wgerfetch/internal/fieldstrip"
)

func main() {
	inPath := flag.String("in", "./curlsapp/Resources/Data/exercises_raw.json", "input JSON file")
	outPath := flag.String("out", "./curlsapp/Resources/Data/exercises.json", "output JSON file")
	field := flag.String("field", "gifUrl", "string field to remove")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Error("failed to read input", "path", *inPath, "error", err)
		os.Exit(1)
	}

	cleaned, removed := fieldstrip.Strip(string(data), *field)

	if err := os.WriteFile(*outPath, []byte(cleaned), 0o644); err != nil {
		log.Error("failed to write output", "path", *outPath, "error", err)
		os.Exit(1)
	}
	log.Info("field removed", "field", *field, "lines", removed, "in", *inPath, "out", *outPath)
}

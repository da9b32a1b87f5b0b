package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"finratio/pkg/core/parse"
	"finratio/pkg/core/ratio"
	"finratio/pkg/core/render"
)

// CLI entry point: read a financial record (JSON, Hjson, or free text),
// print the ratio report as JSON, exit 1 with an error envelope on failure.
func main() {
	dataStr := flag.String("data", "", "Record payload (JSON or free text)")
	filePath := flag.String("file", "", "Read the record from a file instead")
	asMarkdown := flag.Bool("markdown", false, "Render the report as Markdown instead of JSON")
	flag.Parse()

	godotenv.Load()

	input, err := readInput(*dataStr, *filePath)
	if err != nil {
		fail(err, input)
	}

	record, err := parse.ParseRecord(input)
	if err != nil {
		fail(err, input)
	}

	report := ratio.NewEngine(record).Analyze()

	if *asMarkdown {
		fmt.Println(render.CleanMarkdown(render.Markdown(report)))
		return
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fail(err, input)
	}
	fmt.Println(string(out))
}

func readInput(dataStr, filePath string) (string, error) {
	switch {
	case dataStr != "":
		return dataStr, nil
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
}

func fail(err error, input string) {
	envelope := map[string]string{
		"error":          err.Error(),
		"message":        "Failed to calculate financial ratios",
		"input_received": truncate(input),
	}
	out, _ := json.MarshalIndent(envelope, "", "  ")
	fmt.Fprintln(os.Stderr, string(out))
	os.Exit(1)
}

// truncate echoes at most 100 characters, cutting on a rune boundary so
// the envelope stays valid UTF-8.
func truncate(input string) string {
	trimmed := strings.TrimSpace(input)
	runes := []rune(trimmed)
	if len(runes) > 100 {
		return string(runes[:100]) + "..."
	}
	return trimmed
}

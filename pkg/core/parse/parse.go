// Package parse turns raw caller input into a ratio.FinancialRecord.
// Parsing is best-effort and layered: strict JSON first, then mechanical
// JSON repair, then Hjson, and finally a free-text key/value scraper.
// Non-numeric values never reach the engine; only float fields survive.
package parse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"finratio/pkg/core/ratio"
)

// keyValuePattern matches lines like "revenue: 500000" or "cash = 120.5".
var keyValuePattern = regexp.MustCompile(`(\w+)[:\s=]+(\d+\.?\d*)`)

// ParseRecord extracts a financial record from raw input.
// Strategies, in order:
//  1. Strict JSON object of name -> number/null.
//  2. JSON repair (unquoted keys, trailing commas, markdown fences).
//  3. Hjson (comments, unquoted strings, optional commas).
//  4. Line-by-line key/value scraping.
//
// The scraper never fails, so the only error is empty input.
func ParseRecord(input string) (ratio.FinancialRecord, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, fmt.Errorf("empty input")
	}

	if rec, ok := decodeJSONRecord(trimmed); ok {
		return rec, nil
	}

	if repaired, err := jsonrepair.RepairJSON(trimmed); err == nil {
		if rec, ok := decodeJSONRecord(repaired); ok {
			return rec, nil
		}
	}

	if rec, ok := decodeHjsonRecord(trimmed); ok {
		return rec, nil
	}

	return ScrapeText(trimmed), nil
}

// decodeJSONRecord accepts only objects whose values are all numbers or
// nulls; anything else falls through to the next strategy.
func decodeJSONRecord(s string) (ratio.FinancialRecord, bool) {
	var rec ratio.FinancialRecord
	if err := json.Unmarshal([]byte(s), &rec); err != nil {
		return nil, false
	}
	if rec == nil {
		return nil, false
	}
	return rec, true
}

func decodeHjsonRecord(s string) (ratio.FinancialRecord, bool) {
	var raw map[string]interface{}
	if err := hjson.Unmarshal([]byte(s), &raw); err != nil {
		return nil, false
	}

	rec := ratio.FinancialRecord{}
	numeric := 0
	for key, value := range raw {
		switch v := value.(type) {
		case float64:
			rec[normalizeKey(key)] = ratio.Value(v)
			numeric++
		case int:
			rec[normalizeKey(key)] = ratio.Value(float64(v))
			numeric++
		case nil:
			rec[normalizeKey(key)] = nil
		}
	}
	// Hjson parses almost any text as a document; require at least one
	// numeric field before trusting the result over the scraper.
	if numeric == 0 {
		return nil, false
	}
	return rec, true
}

// ScrapeText extracts "key: value" style pairs from free text, one per
// line. Keys are lowercased with spaces collapsed to underscores. An input
// with no matches yields an empty record, not an error; the engine then
// reports the missing fields as diagnostics.
func ScrapeText(input string) ratio.FinancialRecord {
	rec := ratio.FinancialRecord{}
	for _, line := range strings.Split(input, "\n") {
		m := keyValuePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		rec[normalizeKey(m[1])] = ratio.Value(value)
	}
	return rec
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
}

// Package render turns a computed ratio report into a Markdown document
// for human consumption.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"finratio/pkg/core/ratio"
)

// Markdown renders the report as a Markdown document: one table per ratio
// group, the diagnostics (if any), and the summary line. Keys are sorted so
// output is deterministic.
func Markdown(report *ratio.Report) string {
	var b strings.Builder
	b.WriteString("# Financial Ratio Report\n\n")

	groups := []struct {
		title   string
		entries map[string]any
	}{
		{"Profitability", report.Profitability},
		{"Liquidity", report.Liquidity},
		{"Leverage", report.Leverage},
		{"Efficiency", report.Efficiency},
	}

	for _, g := range groups {
		b.WriteString("## " + g.title + "\n\n")
		if len(g.entries) == 0 {
			b.WriteString("_No ratios computable from the supplied record._\n\n")
			continue
		}
		b.WriteString("| Metric | Value |\n|---|---|\n")
		keys := make([]string, 0, len(g.entries))
		for k := range g.entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("| %s | %s |\n", k, formatEntry(g.entries[k])))
		}
		b.WriteString("\n")
	}

	if len(report.ValidationErrors) > 0 {
		b.WriteString("## Validation\n\n")
		for _, d := range report.ValidationErrors {
			b.WriteString("- " + d + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("**" + report.Summary + "**\n")
	return b.String()
}

func formatEntry(v any) string {
	switch t := v.(type) {
	case float64:
		s := fmt.Sprintf("%.4f", t)
		s = strings.TrimRight(s, "0")
		return strings.TrimRight(s, ".")
	case string:
		return t
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CleanMarkdown strips outer markdown code fences so stored or transported
// documents round-trip as pure Markdown.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// ValidateMarkdown checks the document parses under Goldmark. Goldmark is
// very permissive, so this is a basic sanity check.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil
}

package render

import (
	"strings"
	"testing"

	"finratio/pkg/core/ratio"
)

func TestMarkdownRendersGroupsAndSummary(t *testing.T) {
	rec := ratio.FinancialRecord{
		"net_income":   ratio.Value(200000),
		"total_equity": ratio.Value(1000000),
		"total_assets": ratio.Value(2000000),
	}
	report := ratio.NewEngine(rec).Analyze()

	md := Markdown(report)
	if !strings.Contains(md, "## Profitability") {
		t.Error("Missing profitability section")
	}
	if !strings.Contains(md, "| roe | 0.2 |") {
		t.Errorf("Missing roe row in:\n%s", md)
	}
	if !strings.Contains(md, report.Summary) {
		t.Error("Summary not rendered")
	}
	if !ValidateMarkdown(md) {
		t.Error("Rendered document failed markdown validation")
	}
}

func TestMarkdownEmptyGroupsAndDiagnostics(t *testing.T) {
	report := ratio.NewEngine(ratio.FinancialRecord{}).Analyze()
	md := Markdown(report)

	if !strings.Contains(md, "_No ratios computable") {
		t.Error("Empty groups should render a placeholder")
	}
	if !strings.Contains(md, "- Missing required field: net_income") {
		t.Error("Diagnostics should be listed")
	}
}

func TestCleanMarkdown(t *testing.T) {
	fenced := "```markdown\n# Title\n```"
	if got := CleanMarkdown(fenced); got != "# Title" {
		t.Errorf("CleanMarkdown = %q", got)
	}
	plain := "# Title"
	if got := CleanMarkdown(plain); got != plain {
		t.Errorf("CleanMarkdown should pass through plain text, got %q", got)
	}
}

func TestMarkdownDeterministic(t *testing.T) {
	rec := ratio.FinancialRecord{
		"net_income":          ratio.Value(100000),
		"total_equity":        ratio.Value(200000),
		"total_assets":        ratio.Value(1000000),
		"current_assets":      ratio.Value(300000),
		"current_liabilities": ratio.Value(200000),
		"total_debt":          ratio.Value(800000),
	}
	a := Markdown(ratio.NewEngine(rec).Analyze())
	b := Markdown(ratio.NewEngine(rec).Analyze())
	if a != b {
		t.Error("Rendering must be deterministic for the same record")
	}
}

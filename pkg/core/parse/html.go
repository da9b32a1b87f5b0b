package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"finratio/pkg/core/ratio"
)

// ExtractFromHTML scrapes label/value pairs out of HTML tables, e.g. a
// statement snippet pasted from a filing viewer. Each row contributes a
// field when its first cell is a label and its last cell parses as a
// number. Labels are normalized the same way as text-scraped keys.
func ExtractFromHTML(htmlText string) (ratio.FinancialRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	rec := ratio.FinancialRecord{}
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		label := normalizeLabel(cells.First().Text())
		if label == "" {
			return
		}
		value, ok := parseCellNumber(cells.Last().Text())
		if !ok {
			return
		}
		rec[label] = ratio.Value(value)
	})

	return rec, nil
}

// normalizeLabel maps "Total Assets" or "Cost of Goods Sold:" onto the
// engine's snake_case field names.
func normalizeLabel(label string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// parseCellNumber handles filing-table conventions: currency symbols,
// thousands separators, and parenthesized negatives.
func parseCellNumber(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

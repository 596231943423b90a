package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// findTable returns the first table whose header row contains match, or
// nil when no table qualifies. The site carries navigation tables on the
// same pages, so matching on a header keyword is the discriminator.
func findTable(doc *goquery.Document, match string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		if strings.Contains(tbl.Find("tr").First().Text(), match) {
			found = tbl
			return false
		}
		return true
	})
	return found
}

// tableCells splits a table into its header cell texts and body rows.
// The first row is the header (th or td, the site has used both); each
// remaining row becomes a slice of trimmed cell texts.
func tableCells(tbl *goquery.Selection) (header []string, rows [][]string) {
	trs := tbl.Find("tr")
	trs.Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("th, td")
		texts := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(cell.Text()))
		})
		if i == 0 {
			header = texts
			return
		}
		if len(texts) > 0 {
			rows = append(rows, texts)
		}
	})
	return header, rows
}

// columnIndex returns the index of the first header cell containing
// keyword, or -1.
func columnIndex(header []string, keyword string) int {
	for i, h := range header {
		if strings.Contains(h, keyword) {
			return i
		}
	}
	return -1
}

// cellAt returns row[idx] or "" when the column is absent or the row is
// short (the site occasionally pads or truncates rows).
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

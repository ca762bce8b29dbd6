package vendors

import (
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
	"github.com/PuerkitoBio/goquery"
)

// table is html item table located by its header row.
type table struct {
	columns map[string]int
	rows    *goquery.Selection
}

// findTable locates first row whose own cells name all required columns.
// Rows of nested layout tables don't match because only direct cells are compared.
func findTable(doc *goquery.Document, columns labels, required ...string) (*table, bool) {
	var found *table
	doc.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		indexes := headerIndexes(rowCells(tr), columns)
		for _, key := range required {
			if _, ok := indexes[key]; !ok {
				return true
			}
		}
		found = &table{columns: indexes, rows: followingRows(tr)}
		return false
	})
	return found, found != nil
}

func headerIndexes(cells []string, columns labels) map[string]int {
	indexes := make(map[string]int)
	for i, cell := range cells {
		key := fold.Key(strings.TrimRight(cell, ":#. "))
		for column, spellings := range columns {
			if _, taken := indexes[column]; taken {
				continue
			}
			for _, s := range spellings {
				if fold.Key(s) == key {
					indexes[column] = i
				}
			}
		}
	}
	return indexes
}

// followingRows returns sibling rows after header, or body rows when header sits in thead.
func followingRows(header *goquery.Selection) *goquery.Selection {
	rows := header.NextAllFiltered("tr")
	if rows.Length() > 0 {
		return rows
	}
	return header.Closest("table").Find("tbody > tr")
}

// each calls fn for each row with getter of cell by column key.
// Iteration stops at first totals row.
func (t *table) each(fn func(cell func(column string) string)) {
	t.rows.EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := rowCells(tr)
		if len(cells) == 0 {
			return true
		}
		if isTotalsLine(strings.Join(cells, " ")) {
			return false
		}
		fn(func(column string) string {
			ix, ok := t.columns[column]
			if !ok || ix >= len(cells) {
				return ""
			}
			return cells[ix]
		})
		return true
	})
}

// rowCells returns collapsed text of row's own cells.
func rowCells(tr *goquery.Selection) []string {
	cells := make([]string, 0)
	tr.ChildrenFiltered("td,th").Each(func(_ int, td *goquery.Selection) {
		cells = append(cells, strings.Join(strings.Fields(td.Text()), " "))
	})
	return cells
}

// rowText returns collapsed text of row with cells separated by spaces.
func rowText(tr *goquery.Selection) string {
	return strings.Join(rowCells(tr), " ")
}

package vendors

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform/frame"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// labels maps field key to its label spellings.
type labels map[string][]string

// orderLabels are header labels common to vendor confirmations.
var orderLabels = labels{
	"order_number":     {"Order Number", "Order No.", "Order No", "Order"},
	"customer_name":    {"Customer Name", "Customer", "Ship To", "Bill To"},
	"customer_code":    {"Customer Code", "Customer #", "Customer No"},
	"order_date":       {"Order Date", "Date"},
	"account_number":   {"Account Number", "Account No", "Account"},
	"rep_name":         {"Sales Rep", "Sales Representative", "Rep"},
	"total_pieces":     {"Total Pieces", "Total Qty", "Total Quantity", "Total Units"},
	"reference_number": {"Reference Number", "Reference", "PO Number", "PO"},
}

// labelRegex builds single regex matching any label followed by ":" or "#".
func labelRegex(l labels) (*regexp.Regexp, map[string]string) {
	owners := make(map[string]string)
	all := make([]string, 0)
	for key, spellings := range l {
		for _, s := range spellings {
			owners[strings.ToLower(s)] = key
			all = append(all, s)
		}
	}
	// longer spellings first, so "Order Date" wins over "Order"
	sort.Slice(all, func(i, j int) bool {
		if len(all[i]) != len(all[j]) {
			return len(all[i]) > len(all[j])
		}
		return all[i] < all[j]
	})

	quoted := lo.Map(all, func(s string, _ int) string { return regexp.QuoteMeta(s) })
	re := regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\s*[:#]+\s*`)
	return re, owners
}

// extractor pulls labeled values from text. Value of a label ends where next known label starts.
type extractor struct {
	re     *regexp.Regexp
	owners map[string]string
}

func newExtractor(l labels) *extractor {
	re, owners := labelRegex(l)
	return &extractor{re: re, owners: owners}
}

// extract returns first non-empty value of each field found in text.
func (e *extractor) extract(text string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		matches := e.re.FindAllStringSubmatchIndex(line, -1)
		for i, m := range matches {
			end := len(line)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			key := e.owners[strings.ToLower(line[m[2]:m[3]])]
			value := strings.TrimSpace(line[m[1]:end])
			if _, ok := values[key]; !ok && value != "" {
				values[key] = value
			}
		}
	}
	return values
}

var orderExtractor = newExtractor(orderLabels)

// parseOrder fills order header from labeled text.
func parseOrder(text string) models.Order {
	v := orderExtractor.extract(text)
	return models.Order{
		OrderNumber:     firstToken(v["order_number"]),
		CustomerName:    v["customer_name"],
		CustomerCode:    firstToken(v["customer_code"]),
		OrderDate:       firstToken(v["order_date"]),
		AccountNumber:   firstToken(v["account_number"]),
		RepName:         v["rep_name"],
		TotalPieces:     parseQuantity(v["total_pieces"]),
		ReferenceNumber: firstToken(v["reference_number"]),
	}
}

// finish normalizes items and derives total pieces when source did not state it.
func finish(order models.Order, items []models.LineItem, diagnostic string) models.ParseResult {
	for i := range items {
		frame.Normalize(&items[i])
	}

	if order.TotalPieces == 0 {
		order.TotalPieces = lo.SumBy(items, func(item models.LineItem) int { return item.Quantity })
	}

	return models.ParseResult{
		Order:      order,
		Items:      items,
		Diagnostic: diagnostic,
	}
}

func firstToken(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

var integerPattern = regexp.MustCompile(`\d+`)

// parseQuantity returns first integer of value or 0.
func parseQuantity(value string) int {
	m := integerPattern.FindString(value)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

var pricePattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// parsePrice returns money amount found in value, e.g. "$1,089.50", or nil.
func parsePrice(value string) *decimal.Decimal {
	m := pricePattern.FindString(value)
	if m == "" {
		return nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return nil
	}
	return &d
}

var colorCodePattern = regexp.MustCompile(`^[A-Z]?\d{2,4}[A-Z]?$|^[A-Z]{1,2}\d{1,3}$`)

// splitColor splits "033 GUNMETAL" into color code and color name.
func splitColor(value string) (code, color string) {
	fields := strings.Fields(value)
	if len(fields) > 1 && colorCodePattern.MatchString(strings.ToUpper(fields[0])) {
		return fields[0], strings.Join(fields[1:], " ")
	}
	return "", strings.Join(fields, " ")
}

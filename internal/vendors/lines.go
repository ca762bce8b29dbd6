package vendors

import (
	"regexp"
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
)

// lookahead is how many continuation lines an item may span.
const lookahead = 3

var (
	// positionalSize matches "NN/NN NNN" eye/bridge/temple token.
	positionalSize = regexp.MustCompile(`\b(\d{2})/(\d{2})\s+(\d{3})\b`)
	datePattern    = regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b`)
	totalsPattern  = regexp.MustCompile(`(?i)^\s*(sub\s*total|total|grand total|order total)\b`)
	sectionPattern = regexp.MustCompile(`(?i)^\s*(ship(ping)? (to|via|method)|notes?|terms|page \d+|thank you|remarks)\b`)
)

func isTotalsLine(line string) bool {
	return totalsPattern.MatchString(line)
}

func isSectionBoundary(line string) bool {
	return isTotalsLine(line) || sectionPattern.MatchString(line)
}

// positionalLine is item text with its size token decomposed.
type positionalLine struct {
	description string
	eye         string
	bridge      string
	temple      string
	size        string
	rest        string
}

// splitLines returns trimmed non-empty lines of text.
func splitLines(text string) []string {
	lines := make([]string, 0)
	for _, l := range strings.Split(text, "\n") {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// anchorIndex returns index of first line containing any anchor or -1.
func anchorIndex(lines []string, anchors ...string) int {
	for i, l := range lines {
		folded := fold.Lower(l)
		for _, a := range anchors {
			if strings.Contains(folded, fold.Lower(a)) {
				return i
			}
		}
	}
	return -1
}

// scanPositional walks lines after anchor and returns items having size token.
// An item without size token on its first line collects up to lookahead continuation
// lines until a size token appears; date tokens and section boundaries end the window.
// Lines never reaching a size token and dated lines are skipped.
func scanPositional(lines []string, start int) []positionalLine {
	items := make([]positionalLine, 0)
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if isSectionBoundary(line) {
			break
		}

		if datePattern.MatchString(line) && !positionalSize.MatchString(line) {
			continue
		}

		text := line
		j := i
		for !positionalSize.MatchString(text) && j-i < lookahead && j+1 < len(lines) {
			next := lines[j+1]
			if isSectionBoundary(next) || (datePattern.MatchString(next) && !positionalSize.MatchString(next)) {
				break
			}
			j++
			text += " " + next
		}

		loc := positionalSize.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		items = append(items, positionalLine{
			description: strings.TrimSpace(text[:loc[0]]),
			eye:         text[loc[2]:loc[3]],
			bridge:      text[loc[4]:loc[5]],
			temple:      text[loc[6]:loc[7]],
			size:        text[loc[0]:loc[1]],
			rest:        strings.TrimSpace(text[loc[1]:]),
		})
		i = j
	}
	return items
}

// prefixRule decomposes description starting with known brand code.
type prefixRule struct {
	prefix      string
	brand       string
	modelTokens int
	// keepPrefix keeps brand code as part of model, e.g. "PLD 2086".
	keepPrefix bool
}

// decomposition is brand, model and color split of item description.
type decomposition struct {
	brand     string
	model     string
	colorCode string
	color     string
}

// decompose splits description with first matching prefix rule or the generic split.
func decompose(description string, rules []prefixRule) decomposition {
	tokens := strings.Fields(description)
	if len(tokens) == 0 {
		return decomposition{}
	}

	for _, r := range rules {
		if !strings.EqualFold(tokens[0], r.prefix) {
			continue
		}
		rest := tokens[1:]
		n := min(r.modelTokens, len(rest))
		model := strings.Join(rest[:n], " ")
		if r.keepPrefix {
			model = strings.TrimSpace(tokens[0] + " " + model)
		}
		code, color := splitColor(strings.Join(rest[n:], " "))
		if code == "" && len(rest[n:]) == 1 && colorCodePattern.MatchString(strings.ToUpper(rest[n])) {
			code, color = rest[n], ""
		}
		return decomposition{brand: r.brand, model: model, colorCode: code, color: color}
	}

	return genericSplit(tokens)
}

// genericSplit is best-effort: first token brand, next two model, remainder color.
func genericSplit(tokens []string) decomposition {
	d := decomposition{brand: tokens[0]}
	rest := tokens[1:]
	n := min(2, len(rest))
	d.model = strings.Join(rest[:n], " ")
	d.colorCode, d.color = splitColor(strings.Join(rest[n:], " "))
	return d
}

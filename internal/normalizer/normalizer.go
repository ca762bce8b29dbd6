// Package normalizer strips webmail forwarding and quoting chrome from raw email html.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Result contains cleaned html with names of detected wrapping providers.
type Result struct {
	HTML      string
	Providers []string
}

type provider struct {
	name   string
	detect *regexp.Regexp

	// matches are replaced with their "keep" group
	strip []*regexp.Regexp

	// applied only to input without markup
	textDetect *regexp.Regexp
	textStrip  []*regexp.Regexp
}

var providers = []provider{
	{
		name:   "gmail",
		detect: regexp.MustCompile(`(?i)class="gmail_(quote|attr)"|-{5,}\s*Forwarded message\s*-{5,}`),
		strip: []*regexp.Regexp{
			regexp.MustCompile(`(?is)<div[^>]*class="gmail_attr"[^>]*>.*?</div>`),
			regexp.MustCompile(`(?is)-{5,}\s*Forwarded message\s*-{5,}.*?Subject:[^<\n]*(?:<br\s*/?>|\n)(?:\s*To:[^<\n]*(?:<br\s*/?>|\n))?`),
			regexp.MustCompile(`(?i)<div[^>]*class="gmail_quote[^"]*"[^>]*>`),
		},
	},
	{
		name:   "outlook",
		detect: regexp.MustCompile(`(?i)id="divRplyFwdMsg"|class="?MsoNormal|<o:p>`),
		strip: []*regexp.Regexp{
			regexp.MustCompile(`(?is)<div[^>]*id="divRplyFwdMsg"[^>]*>.*?</div>`),
			regexp.MustCompile(`(?is)<!--\[if[^\]]*\]>.*?<!\[endif\]-->`),
			regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
			regexp.MustCompile(`(?i)</?o:p>`),
			regexp.MustCompile(`(?i)<hr[^>]*>`),
			regexp.MustCompile(`(?i)\sclass="?MsoNormal"?`),
		},
	},
	{
		name:   "apple_mail",
		detect: regexp.MustCompile(`(?i)type="cite"|Begin forwarded message:`),
		strip: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Begin forwarded message:`),
			regexp.MustCompile(`(?i)<blockquote[^>]*type="cite"[^>]*>`),
		},
	},
	{
		name:   "yahoo",
		detect: regexp.MustCompile(`(?i)class="yahoo_quoted|id="yahoo_quoted`),
		strip: []*regexp.Regexp{
			regexp.MustCompile(`(?i)<div[^>]*yahoo_quoted[^>]*>`),
		},
	},
	{
		name:   "generic_forward",
		detect: regexp.MustCompile(`(?im)(?:^|<br\s*/?>)[ \t]*&gt;|On\s[^<\n]{4,120}\swrote:`),
		strip: []*regexp.Regexp{
			regexp.MustCompile(`(?i)On\s[^<\n]{4,120}\swrote:`),
			regexp.MustCompile(`(?im)(?P<keep>^|<br\s*/?>)[ \t]*&gt;[ \t]?`),
		},
		textDetect: regexp.MustCompile(`(?m)^[ \t]*>`),
		textStrip: []*regexp.Regexp{
			regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`),
		},
	},
}

var (
	markup          = regexp.MustCompile(`<[a-zA-Z!/]`)
	blockquoteClose = regexp.MustCompile(`(?i)</?blockquote[^>]*>`)
	blankLines      = regexp.MustCompile(`\n{3,}`)
)

// Normalize strips known forwarding wrappers from raw html.
// When no wrapper is recognized input is returned unchanged with no providers.
func Normalize(raw string) Result {
	// a bare ">" opening a line is quoting only in plain text, in html it may close a wrapped tag
	text := !markup.MatchString(raw)

	detected := make([]provider, 0, len(providers))
	for _, p := range providers {
		if p.detect.MatchString(raw) || (text && p.textDetect != nil && p.textDetect.MatchString(raw)) {
			detected = append(detected, p)
		}
	}

	if len(detected) == 0 {
		return Result{HTML: raw}
	}

	cleaned := raw
	names := make([]string, 0, len(detected))
	for _, p := range detected {
		for _, re := range p.strip {
			cleaned = re.ReplaceAllString(cleaned, "${keep}")
		}
		if text {
			for _, re := range p.textStrip {
				cleaned = re.ReplaceAllString(cleaned, "")
			}
		}
		names = append(names, p.name)
	}

	// quoted content lives inside blockquotes, keep content and drop the wrappers
	cleaned = blockquoteClose.ReplaceAllString(cleaned, "")
	cleaned = blankLines.ReplaceAllString(cleaned, "\n\n")

	return Result{
		HTML:      strings.TrimSpace(cleaned),
		Providers: names,
	}
}

// PlainText returns text content of html with scripts and styles removed.
// Block elements are separated by new lines. Invalid html is returned as is.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	doc.Find("script,style,head").Remove()
	doc.Find("br,p,div,tr,li,h1,h2,h3,h4,table").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	doc.Find("td,th").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	lines := strings.Split(doc.Text(), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}

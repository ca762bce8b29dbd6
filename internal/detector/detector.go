// Package detector classifies inbound emails to vendor identities.
package detector

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/samber/lo"
)

// Match is vendor detected for an email.
type Match struct {
	Vendor     models.Vendor
	Confidence int
	Tier       models.Tier
	Evidence   []string
}

type candidate struct {
	vendor   models.Vendor
	evidence []string
}

type tier struct {
	name  models.Tier
	match func(v models.Vendor, in input) []string
}

type input struct {
	domain  string
	content string
}

// Detector evaluates detection tiers in order and stops at first tier with a match.
type Detector struct {
	registry *Registry
	tiers    []tier
}

// NewDetector returns new Detector using vendors from registry.
func NewDetector(registry *Registry) *Detector {
	return &Detector{
		registry: registry,
		tiers: []tier{
			{name: models.TierDomain, match: matchDomain},
			{name: models.TierSignature, match: matchSignature},
			{name: models.TierKeyword, match: matchKeywords},
		},
	}
}

// Detect returns vendor of email.
// Returns platform.ErrNoVendorMatch when nothing matched and platform.ErrAmbiguousVendor
// when two vendors share the best confidence of the first matching tier.
func (d *Detector) Detect(sender, subject, body string) (*Match, error) {
	in := input{
		domain:  senderDomain(sender),
		content: fold.Lower(subject + "\n" + body),
	}

	vendors := d.registry.Active()
	for _, t := range d.tiers {
		candidates := make([]candidate, 0)
		for _, v := range vendors {
			if evidence := t.match(v, in); len(evidence) > 0 {
				candidates = append(candidates, candidate{vendor: v, evidence: evidence})
			}
		}
		if len(candidates) == 0 {
			continue
		}

		return pick(t.name, candidates)
	}

	return nil, platform.ErrNoVendorMatch
}

func pick(name models.Tier, candidates []candidate) (*Match, error) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].vendor.Detection.Weights.Of(name) > candidates[j].vendor.Detection.Weights.Of(name)
	})

	best := candidates[0]
	confidence := best.vendor.Detection.Weights.Of(name)
	if len(candidates) > 1 && candidates[1].vendor.Detection.Weights.Of(name) == confidence {
		tied := lo.FilterMap(candidates, func(c candidate, _ int) (string, bool) {
			return c.vendor.Code, c.vendor.Detection.Weights.Of(name) == confidence
		})
		return nil, fmt.Errorf("%w: %s tier matched %s", platform.ErrAmbiguousVendor, name, strings.Join(tied, ", "))
	}

	return &Match{
		Vendor:     best.vendor,
		Confidence: confidence,
		Tier:       name,
		Evidence:   best.evidence,
	}, nil
}

func matchDomain(v models.Vendor, in input) []string {
	if in.domain == "" {
		return nil
	}
	return lo.Filter(v.Detection.Domains, func(d string, _ int) bool {
		return strings.EqualFold(strings.TrimSpace(d), in.domain)
	})
}

func matchSignature(v models.Vendor, in input) []string {
	return lo.Filter(v.Detection.Signatures, func(s string, _ int) bool {
		return fold.ContainsWord(in.content, fold.Lower(s))
	})
}

func matchKeywords(v models.Vendor, in input) []string {
	hits := lo.Uniq(lo.Filter(v.Detection.Keywords, func(k string, _ int) bool {
		return fold.ContainsWord(in.content, fold.Lower(k))
	}))
	if len(hits) < v.Detection.MinKeywordHits {
		return nil
	}
	return hits
}

// senderDomain returns lower-cased domain of sender address, accepting "Name <user@host>" form.
func senderDomain(sender string) string {
	address := strings.TrimSpace(sender)
	if parsed, err := mail.ParseAddress(address); err == nil {
		address = parsed.Address
	}

	at := strings.LastIndex(address, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(strings.Trim(address[at+1:], "<> \t"))
}

package detector_test

import (
	"strings"
	"testing"

	"github.com/MichalMitros/frame-order-parser/internal/detector"
	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVendors() []models.Vendor {
	return []models.Vendor{
		{
			Code:   "acme",
			Name:   "Acme Frames",
			Active: true,
			Detection: models.Detection{
				Domains:    []string{"acme.com"},
				Signatures: []string{"Acme Frames Ltd"},
				Keywords:   []string{"acme", "roadrunner", "coyote"},
			},
		},
		{
			Code:   "bee",
			Name:   "Bee Optics",
			Active: true,
			Detection: models.Detection{
				Domains:    []string{"bee-optics.com"},
				Signatures: []string{"Bee Optics Inc"},
				Keywords:   []string{"bee optics", "honeycomb", "coyote"},
			},
		},
		{
			Code:   "dormant",
			Name:   "Dormant Eyewear",
			Active: false,
			Detection: models.Detection{
				Domains: []string{"acme.com"},
			},
		},
	}
}

func TestUnitDetect(t *testing.T) {
	reg, err := detector.NewRegistry(testVendors()...)
	require.NoError(t, err)
	d := detector.NewDetector(reg)

	tests := map[string]struct {
		sender, subject, body string
		wantCode              string
		wantTier              models.Tier
		wantConfidence        int
		wantErr               error
	}{
		"domain beats signature of other vendor": {
			sender:         "Orders <orders@acme.com>",
			body:           "Thank you from Bee Optics Inc",
			wantCode:       "acme",
			wantTier:       models.TierDomain,
			wantConfidence: 95,
		},
		"forwarded email matched by signature": {
			sender:         "shop@gmail.com",
			body:           "Order confirmation\nBee Optics Inc, 1 Hive Road",
			wantCode:       "bee",
			wantTier:       models.TierSignature,
			wantConfidence: 90,
		},
		"signature is case and accent insensitive": {
			sender:         "shop@gmail.com",
			body:           "ACMÉ FRAMES LTD",
			wantCode:       "acme",
			wantTier:       models.TierSignature,
			wantConfidence: 90,
		},
		"two keywords classify": {
			sender:         "shop@gmail.com",
			subject:        "Roadrunner order",
			body:           "your acme order",
			wantCode:       "acme",
			wantTier:       models.TierKeyword,
			wantConfidence: 75,
		},
		"single keyword is insufficient": {
			sender:  "shop@gmail.com",
			subject: "honeycomb",
			wantErr: platform.ErrNoVendorMatch,
		},
		"same keyword twice counts once": {
			sender:  "shop@gmail.com",
			subject: "honeycomb",
			body:    "honeycomb honeycomb",
			wantErr: platform.ErrNoVendorMatch,
		},
		"keyword inside longer word does not count": {
			sender:  "shop@gmail.com",
			subject: "Acmeville newsletter",
			body:    "Meet the roadrunner",
			wantErr: platform.ErrNoVendorMatch,
		},
		"tie at signature tier escalates": {
			sender:  "shop@gmail.com",
			body:    "Acme Frames Ltd and Bee Optics Inc",
			wantErr: platform.ErrAmbiguousVendor,
		},
		"tie at keyword tier escalates": {
			sender:  "shop@gmail.com",
			body:    "acme roadrunner coyote honeycomb bee optics",
			wantErr: platform.ErrAmbiguousVendor,
		},
		"subdomain does not match exactly": {
			sender:  "orders@mail.acme.com",
			wantErr: platform.ErrNoVendorMatch,
		},
		"nothing matches": {
			sender:  "noreply@example.com",
			subject: "Newsletter",
			body:    "Spring sale",
			wantErr: platform.ErrNoVendorMatch,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			match, err := d.Detect(tt.sender, tt.subject, tt.body)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, match)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, match.Vendor.Code)
			assert.Equal(t, tt.wantTier, match.Tier)
			assert.Equal(t, tt.wantConfidence, match.Confidence)
			assert.NotEmpty(t, match.Evidence, "should report evidence")
		})
	}
}

func TestUnitDetectHigherWeightWinsWithinTier(t *testing.T) {
	vendors := testVendors()
	vendors[1].Detection.Weights.Signature = 92
	reg, err := detector.NewRegistry(vendors...)
	require.NoError(t, err)

	match, err := detector.NewDetector(reg).Detect("x@gmail.com", "", "Acme Frames Ltd and Bee Optics Inc")

	require.NoError(t, err)
	assert.Equal(t, "bee", match.Vendor.Code)
	assert.Equal(t, 92, match.Confidence)
}

func TestUnitNewRegistry(t *testing.T) {
	tests := map[string]struct {
		mutate  func(v []models.Vendor) []models.Vendor
		wantErr bool
	}{
		"valid": {
			mutate: func(v []models.Vendor) []models.Vendor { return v },
		},
		"shared domain between active vendors": {
			mutate: func(v []models.Vendor) []models.Vendor {
				v[1].Detection.Domains = append(v[1].Detection.Domains, "ACME.com")
				return v
			},
			wantErr: true,
		},
		"shared signature between active vendors": {
			mutate: func(v []models.Vendor) []models.Vendor {
				v[1].Detection.Signatures = []string{"acme frames ltd"}
				return v
			},
			wantErr: true,
		},
		"duplicated code": {
			mutate: func(v []models.Vendor) []models.Vendor {
				v[1].Code = "acme"
				return v
			},
			wantErr: true,
		},
		"duplicated name": {
			mutate: func(v []models.Vendor) []models.Vendor {
				v[1].Name = "ACME frames"
				return v
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			reg, err := detector.NewRegistry(tt.mutate(testVendors())...)

			if tt.wantErr {
				assert.ErrorIs(t, err, platform.ErrInvalidRegistry)
				return
			}
			require.NoError(t, err)
			v, ok := reg.ByCode("acme")
			require.True(t, ok)
			assert.Equal(t, "acme", v.ID, "should default id to code")
			assert.Equal(t, "acme", v.Parser, "should default parser to code")
			assert.Equal(t, models.StrategyNone, v.Enrichment.Strategy)
			assert.Equal(t, models.Weights{Domain: 95, Signature: 90, Keyword: 75}, v.Detection.Weights)
			assert.Equal(t, 2, v.Detection.MinKeywordHits)
			assert.Len(t, reg.Active(), 2, "should skip inactive vendors")
		})
	}
}

func TestUnitDefaultRegistry(t *testing.T) {
	reg, err := detector.DefaultRegistry()
	require.NoError(t, err)

	codes := make([]string, 0)
	for _, v := range reg.Active() {
		codes = append(codes, v.Code)
	}
	assert.Equal(t, []string{"modernoptical", "marchon", "luxottica", "safilo"}, codes)

	marchon, ok := reg.ByID("marchon")
	require.True(t, ok)
	assert.Contains(t, marchon.Detection.Signatures, "Marchon Eyewear, Inc.")

	safilo, ok := reg.ByCode("safilo")
	require.True(t, ok)
	assert.Equal(t, "CARRERA", safilo.Enrichment.PrefixExpansions["CA"])
}

func TestUnitDetectDefaultRegistryKeywords(t *testing.T) {
	reg, err := detector.DefaultRegistry()
	require.NoError(t, err)
	d := detector.NewDetector(reg)

	_, err = d.Detect("club@example.com", "Carrera weekend", "Pick up your embossed member card.")
	assert.ErrorIs(t, err, platform.ErrNoVendorMatch, "brand name inside other word should not classify")

	match, err := d.Detect("shop@gmail.com", "Fwd: Carrera order", "BOSS 1234 frames shipped")
	require.NoError(t, err)
	assert.Equal(t, "safilo", match.Vendor.Code)
	assert.Equal(t, models.TierKeyword, match.Tier)
	assert.ElementsMatch(t, []string{"carrera", "boss"}, match.Evidence)
}

func TestUnitLoadRegistryInvalid(t *testing.T) {
	_, err := detector.LoadRegistry(strings.NewReader("vendors: [{code: a, name: A, active: true, detection: {domains: [a.com]}}, {code: b, name: B, active: true, detection: {domains: [a.com]}}]"))

	assert.ErrorIs(t, err, platform.ErrInvalidRegistry)
}

package enrichment

import (
	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
)

// Attribute weights of variant score. Full agreement scores 95.
const (
	WeightBrand     = 20
	WeightModel     = 25
	WeightColorCode = 20
	WeightSizePart  = 10
)

// Score returns weighted agreement of variant with parsed item.
// Attributes missing on either side don't score.
func Score(item models.LineItem, v models.Variant) int {
	score := 0
	if same(item.Brand, v.Brand) {
		score += WeightBrand
	}
	if same(item.Model, v.Model) {
		score += WeightModel
	}
	if same(item.ColorCode, v.ColorCode) {
		score += WeightColorCode
	}
	for _, pair := range [][2]string{{item.EyeSize, v.EyeSize}, {item.Bridge, v.Bridge}, {item.Temple, v.Temple}} {
		if same(pair[0], pair[1]) {
			score += WeightSizePart
		}
	}
	return score
}

// BestMatch returns highest scoring variant. The first one wins on equal scores.
func BestMatch(item models.LineItem, variants []models.Variant) (*models.Variant, int) {
	var (
		best      *models.Variant
		bestScore = -1
	)
	for ix := range variants {
		if s := Score(item, variants[ix]); s > bestScore {
			best, bestScore = &variants[ix], s
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestScore
}

// same compares letters and digits only, so "B.M.E.C." equals "BMEC" and "1052/S" equals "1052S".
func same(a, b string) bool {
	ca, cb := fold.Compact(a), fold.Compact(b)
	return ca != "" && ca == cb
}

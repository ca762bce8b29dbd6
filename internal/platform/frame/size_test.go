package frame_test

import (
	"testing"

	"github.com/MichalMitros/frame-order-parser/internal/platform/frame"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/stretchr/testify/assert"
)

func TestUnitParseSize(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want frame.Size
	}{
		"eye only":        {raw: "54", want: frame.Size{Eye: "54"}},
		"dashed":          {raw: "50-18-140", want: frame.Size{Eye: "50", Bridge: "18", Temple: "140"}},
		"slash and space": {raw: "54/18 145", want: frame.Size{Eye: "54", Bridge: "18", Temple: "145"}},
		"box separator":   {raw: "52□17-140", want: frame.Size{Eye: "52", Bridge: "17", Temple: "140"}},
		"eye and bridge":  {raw: "49-21", want: frame.Size{Eye: "49", Bridge: "21"}},
		"not a size":      {raw: "BLACK", want: frame.Size{}},
		"three digit eye": {raw: "140", want: frame.Size{}},
		"leading spaces":  {raw: "  55 ", want: frame.Size{Eye: "55"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, frame.ParseSize(tt.raw), "should decompose size")
		})
	}
}

func TestUnitSizeString(t *testing.T) {
	assert.Equal(t, "50-18-140", frame.Size{Eye: "50", Bridge: "18", Temple: "140"}.String())
	assert.Equal(t, "50", frame.Size{Eye: "50", Temple: "140"}.String(), "should stop at first missing part")
}

func TestUnitNormalize(t *testing.T) {
	item := models.LineItem{Brand: " B.M.E.C. ", Model: "BIG AIR", Size: "54-18-145"}

	frame.Normalize(&item)

	assert.Equal(t, 1, item.Quantity, "should default quantity to 1")
	assert.Equal(t, "B.M.E.C.", item.Brand, "should trim brand")
	assert.Equal(t, "54", item.EyeSize)
	assert.Equal(t, "18", item.Bridge)
	assert.Equal(t, "145", item.Temple)
}

func TestUnitHasEye(t *testing.T) {
	tests := map[string]struct {
		size, eye string
		want      bool
	}{
		"dashed":         {size: "50-18-140", eye: "50", want: true},
		"positional":     {size: "50/18 140", eye: "50", want: true},
		"eye only":       {size: "50", eye: "50", want: true},
		"box separator":  {size: "50□18-140", eye: "50", want: true},
		"different eye":  {size: "52-18-140", eye: "50", want: false},
		"longer number":  {size: "502", eye: "50", want: false},
		"empty eye":      {size: "50-18-140", eye: "", want: false},
		"temple not eye": {size: "18-140", eye: "14", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, frame.HasEye(tt.size, tt.eye))
		})
	}
}

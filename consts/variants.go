package consts

import "fmt"

// Variants - tracked variant names, in stacking order. "others" is the
// catch-all bucket published by the source itself.
var Variants = []string{
	"Beta",
	"Alpha",
	"Gamma",
	"Delta",
	"Kappa",
	"Epsilon",
	"Eta",
	"Iota",
	"Lambda",
	"others",
}

// VariantColors - display colors, parallel to Variants
var VariantColors = []string{
	"001219",
	"005f73",
	"0a9396",
	"94d2bd",
	"e9d8a6",
	"ee9b00",
	"ca6702",
	"bb3e03",
	"ae2012",
	"E2797D",
}

// fixed color slots reused by the single location charts
const (
	CaseColorIndex            = 1
	VaccinatedColorIndex      = 4
	FullyVaccinatedColorIndex = 3
)

// Color - css hex color of a color slot
func Color(index int) (string, error) {
	if index < 0 || index >= len(VariantColors) {
		return "", fmt.Errorf("color index %d out of range", index)
	}
	return "#" + VariantColors[index], nil
}

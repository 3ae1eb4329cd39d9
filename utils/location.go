package utils

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortLocations - sort location names for display, so that names such as
// "Côte d'Ivoire" sit next to their ascii neighbours. The input is not
// modified.
func SortLocations(locations []string) []string {
	sorted := make([]string, len(locations))
	copy(sorted, locations)

	collate.New(language.English).SortStrings(sorted)
	return sorted
}

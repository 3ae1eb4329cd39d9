package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortLocations(t *testing.T) {
	locations := []string{"United States", "Côte d'Ivoire", "Chile", "Curacao", "Argentina"}

	actual := SortLocations(locations)
	assert.Equal(t, []string{"Argentina", "Chile", "Côte d'Ivoire", "Curacao", "United States"}, actual, "wrong order")
	assert.Equal(t, "United States", locations[0], "input should not be modified")
}

func TestSortLocationsEmpty(t *testing.T) {
	assert.Equal(t, []string{}, SortLocations([]string{}))
	assert.Equal(t, []string{}, SortLocations(nil))
}

package controller

import (
	"strings"

	"github.com/goliatone/go-pairfinder/pkg/pairing"
)

// Collect reads the current form values into a SearchRequest. Values are
// trimmed, empty location types are dropped, order and duplicates are kept.
func Collect(form Form) (pairing.SearchRequest, error) {
	region := strings.TrimSpace(form.Region())
	if region == "" {
		return pairing.SearchRequest{}, &ValidationError{
			Field:   "region",
			Message: RegionRequiredMessage,
			Err:     ErrRegionRequired,
		}
	}

	raw := form.LocationTypes()
	types := make([]string, 0, len(raw))
	for _, value := range raw {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			types = append(types, trimmed)
		}
	}
	if len(types) < minimumLocationTypesCount {
		return pairing.SearchRequest{}, &ValidationError{
			Field:   "location_types",
			Message: TooFewLocationsMessage,
			Err:     ErrTooFewLocationTypes,
		}
	}

	return pairing.SearchRequest{Region: region, LocationTypes: types}, nil
}

package utils

import (
	"googlemaps.github.io/maps"
)

// preferred reverse-geocoding result types for naming a bubble's place,
// most specific first
var placeTypePreference = []string{
	"point_of_interest",
	"establishment",
	"premise",
	"street_address",
	"route",
	"neighborhood",
	"sublocality",
	"locality",
}

// ReadPlaceName picks a human-readable place label out of reverse
// geocoding results. Returns empty when nothing usable comes back; a
// bubble without a place label is fine.
func ReadPlaceName(results []maps.GeocodingResult) string {
	for _, preferred := range placeTypePreference {
		for _, r := range results {
			if r.FormattedAddress == "" {
				continue
			}
			for _, t := range r.Types {
				if t == preferred {
					return r.FormattedAddress
				}
			}
		}
	}

	for _, r := range results {
		if r.FormattedAddress != "" {
			return r.FormattedAddress
		}
	}
	return ""
}

package amadeus

import (
	"sort"

	"github.com/spf13/cast"
)

// SortByPrice returns the offers ordered ascending by numeric total,
// optionally capped to the first limit entries. The input is not mutated.
func SortByPrice(offers []Offer, limit int) []Offer {
	sorted := make([]Offer, len(offers))
	copy(sorted, offers)

	sort.SliceStable(sorted, func(i, j int) bool {
		return cast.ToFloat64(sorted[i].PriceTotal) < cast.ToFloat64(sorted[j].PriceTotal)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}

// GroupByFlight buckets offers by flight number and departure time, keeping
// first-seen group order. When carrier is non-empty only that carrier's
// offers are grouped. Each group's class list ends up sorted by price.
func GroupByFlight(offers []Offer, carrier string) []FlightGroup {
	type groupKey struct {
		flightNo string
		depTime  string
	}

	var (
		groups []FlightGroup
		index  = make(map[groupKey]int)
	)

	for _, offer := range offers {
		if carrier != "" && offer.Carrier != carrier {
			continue
		}

		key := groupKey{flightNo: offer.FlightNo, depTime: offer.DepTime}
		at, ok := index[key]
		if !ok {
			groups = append(groups, FlightGroup{
				DepAirport: offer.DepAirport,
				ArrAirport: offer.ArrAirport,
				FlightNo:   offer.FlightNo,
				DepTime:    offer.DepTime,
			})
			at = len(groups) - 1
			index[key] = at
		}

		groups[at].Classes = append(groups[at].Classes, FareClass{
			Cabin:        offer.Cabin,
			BookingClass: offer.BookingClass,
			PriceTotal:   offer.PriceTotal,
			Currency:     offer.Currency,
		})
	}

	for i := range groups {
		classes := groups[i].Classes
		sort.SliceStable(classes, func(a, b int) bool {
			return cast.ToFloat64(classes[a].PriceTotal) < cast.ToFloat64(classes[b].PriceTotal)
		})
	}

	return groups
}

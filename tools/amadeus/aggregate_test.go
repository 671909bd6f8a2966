package amadeus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spf13/cast"
)

func offerFixture(carrier, flightNo, depTime, cabin, class, price string) Offer {
	return Offer{
		DepAirport:   "TAS",
		ArrAirport:   "MOW",
		Carrier:      carrier,
		FlightNo:     flightNo,
		DepTime:      depTime,
		Cabin:        cabin,
		BookingClass: class,
		PriceTotal:   price,
		Currency:     "RUB",
	}
}

func TestSortByPriceAscending(t *testing.T) {
	offers := []Offer{
		offerFixture("HY", "HY601", "2025-08-25T09:30:00", "BUSINESS", "C", "45000.00"),
		offerFixture("SU", "SU1871", "2025-08-25T06:10:00", "ECONOMY", "Q", "15500.00"),
		offerFixture("HY", "HY601", "2025-08-25T09:30:00", "ECONOMY", "Y", "19000.00"),
	}

	sorted := SortByPrice(offers, 0)

	require.Len(t, sorted, 3)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t,
			cast.ToFloat64(sorted[i-1].PriceTotal),
			cast.ToFloat64(sorted[i].PriceTotal),
			"flat output must be non-decreasing by price")
	}

	// input order untouched
	assert.Equal(t, "45000.00", offers[0].PriceTotal)
}

func TestSortByPriceLimit(t *testing.T) {
	offers := []Offer{
		offerFixture("HY", "HY601", "2025-08-25T09:30:00", "ECONOMY", "Y", "19000.00"),
		offerFixture("SU", "SU1871", "2025-08-25T06:10:00", "ECONOMY", "Q", "15500.00"),
		offerFixture("S7", "S7902", "2025-08-25T23:40:00", "ECONOMY", "T", "17200.00"),
	}

	sorted := SortByPrice(offers, 2)

	require.Len(t, sorted, 2)
	assert.Equal(t, "15500.00", sorted[0].PriceTotal)
	assert.Equal(t, "17200.00", sorted[1].PriceTotal)
}

func TestGroupByFlightKeyDeterminism(t *testing.T) {
	economy := offerFixture("HY", "HY601", "2025-08-25T09:30:00", "ECONOMY", "Y", "19000.00")
	business := offerFixture("HY", "HY601", "2025-08-25T09:30:00", "BUSINESS", "C", "45000.00")
	other := offerFixture("HY", "HY603", "2025-08-25T18:00:00", "ECONOMY", "Y", "20000.00")

	forward := GroupByFlight([]Offer{economy, business, other}, "HY")
	backward := GroupByFlight([]Offer{business, other, economy}, "HY")

	require.Len(t, forward, 2)
	require.Len(t, backward, 2)

	// same flight+departure always land in one group, whatever the arrival order
	assert.Equal(t, "HY601", forward[0].FlightNo)
	require.Len(t, forward[0].Classes, 2)
	assert.Equal(t, "19000.00", forward[0].Classes[0].PriceTotal)
	assert.Equal(t, "45000.00", forward[0].Classes[1].PriceTotal)

	for _, group := range backward {
		if group.FlightNo != "HY601" {
			continue
		}
		require.Len(t, group.Classes, 2)
		assert.Equal(t, "19000.00", group.Classes[0].PriceTotal)
	}

	// groups keep first-seen order
	assert.Equal(t, "HY601", backward[0].FlightNo)
	assert.Equal(t, "HY603", backward[1].FlightNo)
}

func TestGroupByFlightCarrierFilter(t *testing.T) {
	offers := []Offer{
		offerFixture("HY", "HY601", "2025-08-25T09:30:00", "ECONOMY", "Y", "19000.00"),
		offerFixture("SU", "SU1871", "2025-08-25T06:10:00", "ECONOMY", "Q", "15500.00"),
	}

	groups := GroupByFlight(offers, "HY")

	require.Len(t, groups, 1)
	assert.Equal(t, "HY601", groups[0].FlightNo, "other carriers must never appear in grouped output")
}

func TestGroupByFlightNoFilter(t *testing.T) {
	offers := []Offer{
		offerFixture("HY", "HY601", "2025-08-25T09:30:00", "ECONOMY", "Y", "19000.00"),
		offerFixture("SU", "SU1871", "2025-08-25T06:10:00", "ECONOMY", "Q", "15500.00"),
	}

	groups := GroupByFlight(offers, "")

	assert.Len(t, groups, 2)
}

func TestGroupByFlightClassOrder(t *testing.T) {
	offers := []Offer{
		offerFixture("HY", "HY601", "2025-08-25T09:30:00", "BUSINESS", "C", "45000.00"),
		offerFixture("HY", "HY601", "2025-08-25T09:30:00", "ECONOMY", "B", "21000.00"),
		offerFixture("HY", "HY601", "2025-08-25T09:30:00", "ECONOMY", "Y", "19000.00"),
	}

	groups := GroupByFlight(offers, "HY")

	require.Len(t, groups, 1)
	classes := groups[0].Classes
	require.Len(t, classes, 3)
	for i := 1; i < len(classes); i++ {
		assert.LessOrEqual(t,
			cast.ToFloat64(classes[i-1].PriceTotal),
			cast.ToFloat64(classes[i].PriceTotal),
			"class list must be non-decreasing by price")
	}
}

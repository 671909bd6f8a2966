package amadeus

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize flattens one priced offer into a display record. Missing
// itinerary, segment or price data fails the offer; a missing cabin or
// booking class only falls back to defaults.
func Normalize(p PricedOffer, fallbackCurrency string) (Offer, error) {
	var offer pricedOffer
	if err := json.Unmarshal(p, &offer); err != nil {
		return Offer{}, fmt.Errorf("%w: %v", ErrMalformedOffer, err)
	}

	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return Offer{}, fmt.Errorf("%w: no itinerary segments", ErrMalformedOffer)
	}
	if offer.Price.GrandTotal == "" && offer.Price.Total == "" {
		return Offer{}, fmt.Errorf("%w: no price block", ErrMalformedOffer)
	}

	segments := offer.Itineraries[0].Segments
	first := segments[0]
	last := segments[len(segments)-1]

	total := offer.Price.GrandTotal
	if total == "" {
		total = offer.Price.Total
	}

	currency := offer.Price.Currency
	if currency == "" {
		currency = fallbackCurrency
	}

	cabin, bookingClass := fareDetailsForSegment(offer, first.ID)

	var validating string
	if len(offer.ValidatingAirlineCodes) > 0 {
		validating = offer.ValidatingAirlineCodes[0]
	}

	return Offer{
		DepAirport:        first.Departure.IataCode,
		ArrAirport:        last.Arrival.IataCode,
		Carrier:           first.CarrierCode,
		FlightNo:          first.CarrierCode + first.Number,
		DepTime:           first.Departure.At,
		Cabin:             cabin,
		BookingClass:      bookingClass,
		PriceTotal:        total,
		Currency:          currency,
		ValidatingAirline: validating,
		Raw:               p,
	}, nil
}

// fareDetailsForSegment looks up cabin and booking class in the traveler fare
// details matching the given segment id. Absent data defaults instead of
// failing the offer.
func fareDetailsForSegment(offer pricedOffer, segmentID string) (cabin, bookingClass string) {
	cabin = "ECONOMY"
	for _, traveler := range offer.TravelerPricings {
		for _, detail := range traveler.FareDetailsBySegment {
			if detail.SegmentID != segmentID {
				continue
			}
			if detail.Cabin != "" {
				cabin = detail.Cabin
			}
			bookingClass = detail.Class
			return cabin, bookingClass
		}
	}
	return cabin, bookingClass
}

// LocalTime truncates the departure timestamp to HH:MM for display.
func (o Offer) LocalTime() string {
	idx := strings.IndexByte(o.DepTime, 'T')
	if idx < 0 {
		return o.DepTime
	}
	clock := o.DepTime[idx+1:]
	if len(clock) > 5 {
		clock = clock[:5]
	}
	return clock
}

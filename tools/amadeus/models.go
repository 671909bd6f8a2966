package amadeus

import "encoding/json"

// RawOffer is an offer document exactly as the search endpoint returned it.
// It is passed back to the pricing endpoint unmodified, so it stays opaque.
type RawOffer = json.RawMessage

// PricedOffer is the confirmed offer document returned by the pricing
// endpoint. Only Normalize looks inside it.
type PricedOffer = json.RawMessage

type SearchCriteria struct {
	Origin      string
	Destination string
	Date        string
	Adults      int
	Currency    string
	MaxResults  int
}

// Offer is the flat display record extracted from one priced offer.
type Offer struct {
	DepAirport        string
	ArrAirport        string
	Carrier           string
	FlightNo          string
	DepTime           string
	Cabin             string
	BookingClass      string
	PriceTotal        string
	Currency          string
	ValidatingAirline string
	Raw               PricedOffer
}

type FareClass struct {
	Cabin        string
	BookingClass string
	PriceTotal   string
	Currency     string
}

// FlightGroup collects the fare classes of one physical flight, keyed by
// flight number and departure time.
type FlightGroup struct {
	DepAirport string
	ArrAirport string
	FlightNo   string
	DepTime    string
	Classes    []FareClass
}

// pricedOffer covers the field paths Normalize depends on; everything else in
// the upstream document is ignored.
type pricedOffer struct {
	Price struct {
		Currency   string `json:"currency"`
		Total      string `json:"total"`
		GrandTotal string `json:"grandTotal"`
	} `json:"price"`
	Itineraries []struct {
		Segments []segment `json:"segments"`
	} `json:"itineraries"`
	TravelerPricings []struct {
		FareDetailsBySegment []fareDetail `json:"fareDetailsBySegment"`
	} `json:"travelerPricings"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

type segment struct {
	ID        string `json:"id"`
	Departure struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IataCode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
}

type fareDetail struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin"`
	Class     string `json:"class"`
}

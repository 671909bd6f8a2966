package bot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadbekGo/sky-price-bot/tools/amadeus"
	"github.com/asadbekGo/sky-price-bot/tools/ets"
)

func TestFormatOffers(t *testing.T) {
	offers := []amadeus.Offer{
		{
			DepAirport: "TAS", ArrAirport: "MOW",
			Carrier: "SU", FlightNo: "SU1871", DepTime: "2025-08-25T06:10:00",
			Cabin: "ECONOMY", BookingClass: "Q",
			PriceTotal: "15500.00", Currency: "RUB", ValidatingAirline: "SU",
		},
		{
			DepAirport: "TAS", ArrAirport: "MOW",
			Carrier: "HY", FlightNo: "HY601", DepTime: "2025-08-25T09:30:00",
			Cabin: "ECONOMY", BookingClass: "Y",
			PriceTotal: "19000.00", Currency: "RUB",
		},
	}

	text := FormatOffers("Tashkent", "Moscow", "2025-08-25", offers)

	assert.Contains(t, text, "🛫 Tashkent → Moscow on 2025-08-25")
	assert.Contains(t, text, "✈️ SU1871 (SU): 15500.00 RUB | ECONOMY Q | 06:10")
	// carrier code backs up a missing validating airline
	assert.Contains(t, text, "✈️ HY601 (HY): 19000.00 RUB | ECONOMY Y | 09:30")
}

func TestFormatGroups(t *testing.T) {
	groups := []amadeus.FlightGroup{
		{
			DepAirport: "TAS", ArrAirport: "MOW",
			FlightNo: "HY601", DepTime: "2025-08-25T09:30:00",
			Classes: []amadeus.FareClass{
				{Cabin: "ECONOMY", BookingClass: "Y", PriceTotal: "19000.00", Currency: "RUB"},
				{Cabin: "BUSINESS", BookingClass: "C", PriceTotal: "45000.00", Currency: "RUB"},
			},
		},
	}

	text := FormatGroups("Tashkent", "Moscow", "2025-08-25", groups)

	assert.Contains(t, text, "✈️ HY601 TAS → MOW at 09:30")
	assert.Contains(t, text, "• ECONOMY Y — 19000.00 RUB")
	assert.Contains(t, text, "• BUSINESS C — 45000.00 RUB")
}

func TestFormatEtsOffersSkipsMalformed(t *testing.T) {
	payload := `{"data":[
		{"price":{"total":"18200.00"},
		 "validatingAirlineCodes":["HY"],
		 "itineraries":[{"segments":[{"carrierCode":"HY","number":"601"}]}]},
		{"price":{"total":"9000.00"},
		 "itineraries":[]},
		{"itineraries":[{"segments":[{"carrierCode":"SU","number":"1871"}]}]}
	]}`

	var response ets.OffersResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &response))

	text := FormatEtsOffers("Tashkent", "Moscow", "2025-08-25", response)

	assert.Contains(t, text, "✈️ HY601 (HY): ₽18200.00")
	assert.NotContains(t, text, "9000.00", "entry without segments is skipped")
	assert.NotContains(t, text, "SU1871", "entry without a price is skipped")
}

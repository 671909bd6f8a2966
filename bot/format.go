package bot

import (
	"fmt"
	"strings"

	"github.com/asadbekGo/sky-price-bot/tools/amadeus"
	"github.com/asadbekGo/sky-price-bot/tools/ets"
)

func formatHeader(b *strings.Builder, origin, destination, date string) {
	fmt.Fprintf(b, "🛫 %s → %s on %s\n\n", origin, destination, date)
}

// FormatOffers renders the flat, price-sorted result list.
func FormatOffers(origin, destination, date string, offers []amadeus.Offer) string {
	var b strings.Builder
	formatHeader(&b, origin, destination, date)

	for _, offer := range offers {
		airline := offer.ValidatingAirline
		if airline == "" {
			airline = offer.Carrier
		}
		fmt.Fprintf(&b, "✈️ %s (%s): %s %s | %s %s | %s\n",
			offer.FlightNo, airline, offer.PriceTotal, offer.Currency,
			offer.Cabin, offer.BookingClass, offer.LocalTime())
	}

	return b.String()
}

// FormatGroups renders one block per flight with its fare classes nested.
func FormatGroups(origin, destination, date string, groups []amadeus.FlightGroup) string {
	var b strings.Builder
	formatHeader(&b, origin, destination, date)

	for _, group := range groups {
		fmt.Fprintf(&b, "✈️ %s %s → %s at %s\n",
			group.FlightNo, group.DepAirport, group.ArrAirport, localClock(group.DepTime))
		for _, class := range group.Classes {
			fmt.Fprintf(&b, "   • %s %s — %s %s\n",
				class.Cabin, class.BookingClass, class.PriceTotal, class.Currency)
		}
	}

	return b.String()
}

// FormatEtsOffers renders the scraped B2B variant's envelope. Entries missing
// the expected fields are skipped rather than failing the whole reply.
func FormatEtsOffers(origin, destination, date string, response ets.OffersResponse) string {
	var b strings.Builder
	formatHeader(&b, origin, destination, date)

	for _, offer := range response.Data {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		if offer.Price.Total == "" {
			continue
		}

		first := offer.Itineraries[0].Segments[0]
		airline := first.CarrierCode
		if len(offer.ValidatingAirlineCodes) > 0 {
			airline = offer.ValidatingAirlineCodes[0]
		}

		fmt.Fprintf(&b, "✈️ %s%s (%s): ₽%s\n", first.CarrierCode, first.Number, airline, offer.Price.Total)
	}

	return b.String()
}

func localClock(at string) string {
	idx := strings.IndexByte(at, 'T')
	if idx < 0 {
		return at
	}
	clock := at[idx+1:]
	if len(clock) > 5 {
		clock = clock[:5]
	}
	return clock
}

package bot

import "strings"

var cityAirportCodes = map[string]string{
	"Tashkent":  "TAS",
	"Samarkand": "SKD",
	"Fergana":   "FEG",
	"Urgench":   "UGC",
	"Bukhara":   "BHK",
	"Namangan":  "NMA",
	"Andijan":   "AZN",
	"Nukus":     "NCU",
	"Moscow":    "MOW",
	"Istanbul":  "IST",
	"Dubai":     "DXB",
	"Antalya":   "AYT",
	"Jeddah":    "JED",
	"Seoul":     "ICN",
}

// AirportCode maps a known city name to its IATA code. Unknown cities pass
// through uppercased, the upstream API rejects them if they are not codes.
func AirportCode(city string) string {
	if code, ok := cityAirportCodes[city]; ok {
		return code
	}
	return strings.ToUpper(city)
}

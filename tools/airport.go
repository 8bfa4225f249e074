package tools

import (
	"context"
	"fmt"
)

func (r *Registry) airportInfo(ctx context.Context, c AirportInfoCall) string {
	if r.data == nil {
		return fmt.Sprintf("Demo: %s Airport - Status: Operational, Avg Delay: 15 min, Weather: Clear", c.AirportCode)
	}

	airports, err := r.data.Airports(ctx, c.AirportCode)
	if err != nil {
		r.log.Warn("airport lookup failed", "airport", c.AirportCode, "error", err)
		return fmt.Sprintf("Error fetching airport info: %v", err)
	}
	if len(airports) == 0 {
		return fmt.Sprintf("Airport %s not found.", c.AirportCode)
	}

	a := airports[0]
	return fmt.Sprintf(`Airport Information:
🏢 Name: %s
📍 Location: %s, %s
🗺️ IATA Code: %s
⏰ Timezone: %s`,
		orDefault(a.AirportName, "Unknown"),
		orDefault(a.CityIATACode, "Unknown"),
		orDefault(a.CountryName, "Unknown"),
		orDefault(a.IATACode, "Unknown"),
		orDefault(a.Timezone, "Unknown"),
	)
}

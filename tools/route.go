package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/flightdesk/aviation"
)

// MaxRouteResults caps the entries listed by the route search.
const MaxRouteResults = 5

func (r *Registry) searchRoute(ctx context.Context, c RouteSearchCall) string {
	if r.data == nil {
		return fmt.Sprintf("Demo: Found 5 flights from %s to %s. Next departures: 2:30 PM, 4:15 PM, 6:00 PM", c.DepartureCode, c.ArrivalCode)
	}

	flights, err := r.data.Flights(ctx, aviation.FlightQuery{
		DepartureIATA: c.DepartureCode,
		ArrivalIATA:   c.ArrivalCode,
	})
	if err != nil {
		r.log.Warn("route search failed", "from", c.DepartureCode, "to", c.ArrivalCode, "error", err)
		return fmt.Sprintf("Error searching flights: %v", err)
	}
	if len(flights) == 0 {
		return fmt.Sprintf("No flights found from %s to %s", c.DepartureCode, c.ArrivalCode)
	}
	if len(flights) > MaxRouteResults {
		flights = flights[:MaxRouteResults]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Flights from %s to %s:\n\n", c.DepartureCode, c.ArrivalCode)
	for i, f := range flights {
		code := "N/A"
		if f.Flight != nil && f.Flight.IATA != "" {
			code = f.Flight.IATA
		}
		departs := "N/A"
		if f.Departure != nil && f.Departure.Scheduled != "" {
			departs = f.Departure.Scheduled
		}
		fmt.Fprintf(&b, "%d. %s - Departs: %s - Status: %s\n", i+1, code, departs, orDefault(f.FlightStatus, "Unknown"))
	}
	return b.String()
}

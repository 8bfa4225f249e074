package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/flightdesk/aviation"
)

func (r *Registry) trackFlight(ctx context.Context, c TrackFlightCall) string {
	if r.data == nil {
		return fmt.Sprintf("Demo: Flight %s - Status: On Time, Departure: 2:30 PM, Arrival: 5:45 PM, Gate: A12", c.FlightNumber)
	}

	flights, err := r.data.Flights(ctx, aviation.FlightQuery{FlightIATA: c.FlightNumber})
	if err != nil {
		r.log.Warn("track flight failed", "flight", c.FlightNumber, "error", err)
		return fmt.Sprintf("Error tracking flight: %v", err)
	}
	if len(flights) == 0 {
		return fmt.Sprintf("Flight %s not found. Please check the flight number.", c.FlightNumber)
	}

	f := flights[0]
	dep := endpointOrEmpty(f.Departure)
	arr := endpointOrEmpty(f.Arrival)

	return fmt.Sprintf(`Flight %s Status:
✈️ Status: %s
📍 Route: %s → %s
🛫 Departure: %s
🛬 Arrival: %s
🚪 Gate: %s`,
		c.FlightNumber,
		strings.ToUpper(orDefault(f.FlightStatus, "Unknown")),
		orDefault(dep.Airport, "Unknown"),
		orDefault(arr.Airport, "Unknown"),
		orDefault(dep.Scheduled, "Unknown"),
		orDefault(arr.Scheduled, "Unknown"),
		orDefault(dep.Gate, "TBA"),
	)
}

func endpointOrEmpty(e *aviation.Endpoint) aviation.Endpoint {
	if e == nil {
		return aviation.Endpoint{}
	}
	return *e
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

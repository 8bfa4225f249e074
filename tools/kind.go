package tools

import (
	"fmt"

	"github.com/flightdesk/types"
)

// Kind enumerates the closed set of tools the model may call.
type Kind int

const (
	KindCurrentTime Kind = iota
	KindTrackFlight
	KindAirportInfo
	KindRouteSearch

	numKinds
)

var kindNames = [numKinds]string{
	KindCurrentTime: "get_current_time",
	KindTrackFlight: "track_flight",
	KindAirportInfo: "get_airport_info",
	KindRouteSearch: "search_flights_by_route",
}

// Kinds returns every tool kind in advertisement order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the tool name advertised to the provider.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a provider-supplied tool name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", types.ErrUnknownTool, name)
}

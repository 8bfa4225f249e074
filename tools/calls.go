package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/flightdesk/types"
)

// Call is a validated, typed tool invocation. The set of implementations is
// closed: one per Kind.
type Call interface {
	Kind() Kind
	sealed()
}

type CurrentTimeCall struct{}

type TrackFlightCall struct {
	FlightNumber string `json:"flight_number"`
}

type AirportInfoCall struct {
	AirportCode string `json:"airport_code"`
}

type RouteSearchCall struct {
	DepartureCode string `json:"departure_code"`
	ArrivalCode   string `json:"arrival_code"`
}

func (CurrentTimeCall) Kind() Kind { return KindCurrentTime }
func (TrackFlightCall) Kind() Kind { return KindTrackFlight }
func (AirportInfoCall) Kind() Kind { return KindAirportInfo }
func (RouteSearchCall) Kind() Kind { return KindRouteSearch }

func (CurrentTimeCall) sealed() {}
func (TrackFlightCall) sealed() {}
func (AirportInfoCall) sealed() {}
func (RouteSearchCall) sealed() {}

// normalizeArguments treats an empty argument string as an empty object.
func normalizeArguments(raw string) []byte {
	b := bytes.TrimSpace([]byte(raw))
	if len(b) == 0 {
		return []byte("{}")
	}
	return b
}

func decodeCall(k Kind, raw []byte) (Call, error) {
	var (
		call Call
		err  error
	)
	switch k {
	case KindCurrentTime:
		call = CurrentTimeCall{}
	case KindTrackFlight:
		var c TrackFlightCall
		err = json.Unmarshal(raw, &c)
		call = c
	case KindAirportInfo:
		var c AirportInfoCall
		err = json.Unmarshal(raw, &c)
		call = c
	case KindRouteSearch:
		var c RouteSearchCall
		err = json.Unmarshal(raw, &c)
		call = c
	default:
		return nil, fmt.Errorf("%w: '%s'", types.ErrUnknownTool, k)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: tool '%s': %v", types.ErrInvalidToolArguments, k, err)
	}
	return call, nil
}

// Package tools holds the closed set of tools the model may call, their
// advertised schemas and their implementations.
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flightdesk/aviation"
	"github.com/flightdesk/logger"
	"github.com/flightdesk/types"
	"github.com/flightdesk/validate"
)

// FlightData is the aviation data source the flight and airport tools read.
type FlightData interface {
	Flights(ctx context.Context, q aviation.FlightQuery) ([]aviation.Flight, error)
	Airports(ctx context.Context, search string) ([]aviation.Airport, error)
}

// Registry decodes provider directives into typed calls and executes them.
type Registry struct {
	defs      []types.ToolDefinition
	validator *validate.Validator
	data      FlightData
	now       func() time.Time
	log       *logger.Logger
}

// NewRegistry builds the registry. A nil data source switches every flight
// and airport tool to its fixed demo response. A nil now uses time.Now.
func NewRegistry(data FlightData, now func() time.Time) (*Registry, error) {
	defs := Definitions()
	v, err := validate.NewValidator(defs)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &Registry{
		defs:      defs,
		validator: v,
		data:      data,
		now:       now,
		log:       logger.NewLogger("ToolRegistry", uuid.NewString()),
	}, nil
}

// Definitions returns the schemas advertised to the provider.
func (r *Registry) Definitions() []types.ToolDefinition {
	return r.defs
}

// DemoMode reports whether tools answer with fixed demo payloads.
func (r *Registry) DemoMode() bool {
	return r.data == nil
}

// Decode validates a directive's arguments against its tool's schema and
// returns the typed call.
func (r *Registry) Decode(tc types.ToolCall) (Call, error) {
	kind, err := ParseKind(tc.Name)
	if err != nil {
		return nil, err
	}
	raw := normalizeArguments(tc.Arguments)
	if err := r.validator.ValidateArguments(kind.String(), raw); err != nil {
		return nil, err
	}
	return decodeCall(kind, raw)
}

// Execute runs call. It never fails: upstream problems are rendered into the
// returned string for the model to explain.
func (r *Registry) Execute(ctx context.Context, call Call) string {
	start := time.Now()
	var result string
	switch c := call.(type) {
	case CurrentTimeCall:
		result = r.currentTime()
	case TrackFlightCall:
		result = r.trackFlight(ctx, c)
	case AirportInfoCall:
		result = r.airportInfo(ctx, c)
	case RouteSearchCall:
		result = r.searchRoute(ctx, c)
	default:
		result = fmt.Sprintf("Error: no implementation for tool %T", call)
	}
	r.log.Debug("tool executed", "tool", call.Kind().String(), "demo", r.DemoMode(), "duration", time.Since(start))
	return result
}

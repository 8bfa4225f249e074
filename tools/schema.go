package tools

import "github.com/flightdesk/types"

func stringParam(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
		"minLength":   1,
	}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Definition returns the schema advertised to the provider for k.
func (k Kind) Definition() types.ToolDefinition {
	switch k {
	case KindCurrentTime:
		return types.ToolDefinition{
			Name:        k.String(),
			Description: "Get the current date and time",
			Parameters:  objectSchema(map[string]any{}),
		}
	case KindTrackFlight:
		return types.ToolDefinition{
			Name:        k.String(),
			Description: "Track a specific flight in real-time by its flight number (IATA code). Use format like AA123, UA456, DL789.",
			Parameters: objectSchema(map[string]any{
				"flight_number": stringParam("The flight number in IATA format (e.g., AA123, UA456)"),
			}, "flight_number"),
		}
	case KindAirportInfo:
		return types.ToolDefinition{
			Name:        k.String(),
			Description: "Get detailed information about an airport including location, timezone, and current status using its IATA code (3-letter code like JFK, LAX, ORD)",
			Parameters: objectSchema(map[string]any{
				"airport_code": stringParam("The IATA airport code (e.g., JFK, LAX, ORD, ATL)"),
			}, "airport_code"),
		}
	case KindRouteSearch:
		return types.ToolDefinition{
			Name:        k.String(),
			Description: "Search for all flights between two airports. Provide departure and arrival airport IATA codes.",
			Parameters: objectSchema(map[string]any{
				"departure_code": stringParam("Departure airport IATA code (e.g., JFK, LAX)"),
				"arrival_code":   stringParam("Arrival airport IATA code (e.g., LAX, ORD)"),
			}, "departure_code", "arrival_code"),
		}
	}
	panic("tools: no definition for " + k.String())
}

// Definitions returns the schema of every tool in advertisement order.
func Definitions() []types.ToolDefinition {
	defs := make([]types.ToolDefinition, 0, numKinds)
	for _, k := range Kinds() {
		defs = append(defs, k.Definition())
	}
	return defs
}

package aviation

// Envelope is the response shape shared by the provider's resources.
type Envelope[T any] struct {
	Data  []T       `json:"data"`
	Error *APIError `json:"error,omitempty"`
}

// APIError is the provider's error object.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// Flight is one record of the /flights resource. Only the fields the tools
// render are decoded.
type Flight struct {
	FlightStatus string    `json:"flight_status"`
	Departure    *Endpoint `json:"departure"`
	Arrival      *Endpoint `json:"arrival"`
	Flight       *Ident    `json:"flight"`
}

// Endpoint is the departure or arrival side of a flight.
type Endpoint struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
	Gate      string `json:"gate"`
}

// Ident carries the flight's codes.
type Ident struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
}

// Airport is one record of the /airports resource.
type Airport struct {
	AirportName  string `json:"airport_name"`
	IATACode     string `json:"iata_code"`
	CityIATACode string `json:"city_iata_code"`
	CountryName  string `json:"country_name"`
	Timezone     string `json:"timezone"`
}

// FlightQuery filters the /flights resource. Empty fields are omitted.
type FlightQuery struct {
	FlightIATA    string
	DepartureIATA string
	ArrivalIATA   string
}

package aviation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightdesk/config"
	"github.com/flightdesk/types"
)

func newTestClient(url string, timeout time.Duration) *Client {
	return NewClient(config.Aviation{
		APIKey:  "test-key",
		BaseURL: url,
		Timeout: timeout,
	})
}

func TestFlightsSendsFilters(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/flights", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("access_key"))
		assert.Equal(t, "JFK", q.Get("dep_iata"))
		assert.Equal(t, "LAX", q.Get("arr_iata"))
		assert.False(t, q.Has("flight_iata"))
		w.Write([]byte(`{"data":[{"flight_status":"active","flight":{"iata":"AA1"},"departure":{"airport":"John F Kennedy","gate":"B3"}}]}`))
	}))
	defer ts.Close()

	flights, err := newTestClient(ts.URL, time.Second).Flights(context.Background(), FlightQuery{
		DepartureIATA: "JFK",
		ArrivalIATA:   "LAX",
	})
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, "active", flights[0].FlightStatus)
	assert.Equal(t, "AA1", flights[0].Flight.IATA)
	assert.Equal(t, "B3", flights[0].Departure.Gate)
	assert.Nil(t, flights[0].Arrival)
}

func TestAirportsSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/airports", r.URL.Path)
		assert.Equal(t, "JFK", r.URL.Query().Get("search"))
		w.Write([]byte(`{"data":[{"airport_name":"John F Kennedy International","iata_code":"JFK","city_iata_code":"NYC","country_name":"United States","timezone":"America/New_York"}]}`))
	}))
	defer ts.Close()

	airports, err := newTestClient(ts.URL, time.Second).Airports(context.Background(), "JFK")
	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "America/New_York", airports[0].Timezone)
}

func TestMissingDataIsEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pagination":{"count":0}}`))
	}))
	defer ts.Close()

	flights, err := newTestClient(ts.URL, time.Second).Flights(context.Background(), FlightQuery{FlightIATA: "ZZ9"})
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestErrorEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"invalid_access_key","message":"You have not supplied a valid API Access Key."}}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL, time.Second).Flights(context.Background(), FlightQuery{FlightIATA: "AA1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUpstreamTool))
	assert.Contains(t, err.Error(), "invalid_access_key")
}

func TestNonJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL, time.Second).Airports(context.Background(), "JFK")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUpstreamTool))
	assert.Contains(t, err.Error(), "502")
}

func TestTimeoutIsBounded(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	start := time.Now()
	_, err := newTestClient(ts.URL, 50*time.Millisecond).Flights(context.Background(), FlightQuery{FlightIATA: "AA1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrUpstreamTool))
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.NotContains(t, err.Error(), "test-key")
}

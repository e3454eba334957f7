package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/platform/obs"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// statusOK is the success sentinel in the matrix response body. Every other
// value is a StatusError, even when the HTTP exchange itself succeeded.
const statusOK = "OK"

var remoteRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "geodist_remote_api_requests_total",
	Help: "Remote distance-matrix requests by outcome.",
}, []string{"outcome"})

// matrixResponse is the slice of the response body this strategy reads.
type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// MatrixAPIStrategy computes distances by asking a distance-matrix web
// service. It holds the API key it was constructed with for its whole
// lifetime and performs one GET per calculation: no retries, no batching,
// no caching. The strategy is safe for concurrent use.
type MatrixAPIStrategy struct {
	session *http.Client
	apiKey  string
	baseURL string
}

// Option adjusts a MatrixAPIStrategy at construction.
type Option func(*MatrixAPIStrategy)

// WithBaseURL points the strategy at a different matrix endpoint.
func WithBaseURL(url string) Option {
	return func(m *MatrixAPIStrategy) { m.baseURL = url }
}

// WithHTTPClient replaces the default client and its 10 second timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(m *MatrixAPIStrategy) { m.session = c }
}

func NewMatrixAPIStrategy(apiKey string, opts ...Option) (*MatrixAPIStrategy, error) {
	if apiKey == "" {
		return nil, errors.New("matrix api key is empty")
	}

	strategy := &MatrixAPIStrategy{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}

	for _, opt := range opts {
		opt(strategy)
	}

	return strategy, nil
}

// Return the distance in kilometers reported by the remote matrix endpoint.
func (m *MatrixAPIStrategy) CalculateDistance(
	ctx context.Context,
	origin domain.GeoPoint,
	destination domain.GeoPoint,
) (_ float64, err error) {
	defer obs.Time(ctx, "matrix.CalculateDistance")(&err)

	if err := origin.Validate(); err != nil {
		return 0, fmt.Errorf("%w: origin: %w", domain.ErrDistanceCalculation, err)
	}
	if err := destination.Validate(); err != nil {
		return 0, fmt.Errorf("%w: destination: %w", domain.ErrDistanceCalculation, err)
	}

	req, err := m.newRequest(ctx, m.baseURL)
	if err != nil {
		remoteRequests.WithLabelValues("transport_error").Inc()
		return 0, &domain.TransportError{Err: err}
	}

	q := req.URL.Query()
	q.Set("units", "metric")
	q.Set("origins", origin.String())
	q.Set("destinations", destination.String())
	q.Set("key", m.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := m.do(req)
	if err != nil {
		remoteRequests.WithLabelValues("transport_error").Inc()
		return 0, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	var decoded matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		remoteRequests.WithLabelValues("transport_error").Inc()
		return 0, &domain.TransportError{Err: fmt.Errorf("decode matrix response: %w", err)}
	}

	if decoded.Status != statusOK {
		remoteRequests.WithLabelValues("status_error").Inc()
		return 0, &domain.StatusError{Status: decoded.Status}
	}

	if len(decoded.Rows) == 0 || len(decoded.Rows[0].Elements) == 0 {
		remoteRequests.WithLabelValues("transport_error").Inc()
		return 0, &domain.TransportError{Err: errors.New("matrix response carries no elements")}
	}

	meters := decoded.Rows[0].Elements[0].Distance.Value
	if meters < 0 {
		remoteRequests.WithLabelValues("transport_error").Inc()
		return 0, &domain.TransportError{Err: fmt.Errorf("matrix response carries negative distance %g", meters)}
	}

	remoteRequests.WithLabelValues("ok").Inc()

	return meters / 1000, nil
}

package services

import (
	"context"

	"github.com/go-kit/log"

	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/ports"
)

// LoggingStrategy decorates another strategy with one observability event
// per successful calculation. Failures pass through untouched and produce
// no event; the decorator never swallows an error.
type LoggingStrategy struct {
	next   ports.DistanceStrategy
	logger log.Logger
}

// NewLoggingStrategy wraps next. A nil logger silences the events.
func NewLoggingStrategy(next ports.DistanceStrategy, logger log.Logger) *LoggingStrategy {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &LoggingStrategy{next: next, logger: logger}
}

func (l *LoggingStrategy) CalculateDistance(
	ctx context.Context,
	origin domain.GeoPoint,
	destination domain.GeoPoint,
) (float64, error) {
	km, err := l.next.CalculateDistance(ctx, origin, destination)
	if err != nil {
		return 0, err
	}

	l.logger.Log("msg", "calculated distance", "km", km)

	return km, nil
}

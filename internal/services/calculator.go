package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/ports"
)

var calculations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "geodist_calculations_total",
	Help: "Distance calculations by strategy and outcome.",
}, []string{"strategy", "outcome"})

// Calculator owns one active strategy, always wrapped in LoggingStrategy,
// and is the single place a calculation failure is absorbed. Callers get a
// value and an ok flag; the error itself goes to the logger.
//
// The calculator is safe for concurrent use.
type Calculator struct {
	mu       sync.RWMutex
	strategy ports.DistanceStrategy
	name     string
	logger   log.Logger
}

// NewCalculator builds the initial strategy from factory and wraps it. A
// factory failure here is a configuration problem and propagates.
func NewCalculator(factory ports.StrategyFactory, logger log.Logger) (*Calculator, error) {
	if factory == nil {
		return nil, errors.New("calculator: factory must be non-nil")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	c := &Calculator{logger: logger}
	if err := c.SetStrategy(factory); err != nil {
		return nil, err
	}
	return c, nil
}

// SetStrategy swaps in a freshly built, wrapped strategy. The very next
// calculation uses it. On factory failure the current strategy stays in
// place and the error reports which factory refused.
func (c *Calculator) SetStrategy(factory ports.StrategyFactory) error {
	if factory == nil {
		return errors.New("calculator: factory must be non-nil")
	}

	strategy, err := factory.CreateStrategy()
	if err != nil {
		return fmt.Errorf("create strategy %q: %w", factory.Name(), err)
	}

	c.mu.Lock()
	c.strategy = NewLoggingStrategy(strategy, c.logger)
	c.name = factory.Name()
	c.mu.Unlock()

	return nil
}

// Strategy reports the name of the active strategy.
func (c *Calculator) Strategy() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// CalculateDistance runs the active strategy. A failed calculation is
// reported through the logger and collapsed into ok=false here and nowhere
// else; callers must check the flag because zero is a valid distance.
func (c *Calculator) CalculateDistance(
	ctx context.Context,
	origin domain.GeoPoint,
	destination domain.GeoPoint,
) (float64, bool) {
	c.mu.RLock()
	strategy, name := c.strategy, c.name
	c.mu.RUnlock()

	km, err := strategy.CalculateDistance(ctx, origin, destination)
	if err != nil {
		calculations.WithLabelValues(name, "error").Inc()
		c.logger.Log("msg", "distance calculation failed", "strategy", name, "err", err)
		return 0, false
	}

	calculations.WithLabelValues(name, "ok").Inc()
	return km, true
}

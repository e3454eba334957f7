package services

import (
	"context"
	"errors"
	"testing"

	"geo-distance-service/internal/adapters/distance"
	"geo-distance-service/internal/domain"
)

func TestCalculatorCalculateDistance(t *testing.T) {
	logger := &recordingLogger{}
	calc, err := NewCalculator(&distance.MockFactory{
		FactoryName: "stub",
		Strategy:    &distance.MockStrategy{Km: 12.5},
	}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	km, ok := calc.CalculateDistance(context.Background(), domain.GeoPoint{}, domain.GeoPoint{Lat: 1})
	if !ok {
		t.Fatal("expected ok result")
	}
	if km != 12.5 {
		t.Fatalf("distance = %v, want 12.5", km)
	}

	if got := countEvents(logger.events, "calculated distance"); got != 1 {
		t.Fatalf("success events = %d, want 1", got)
	}
	if calc.Strategy() != "stub" {
		t.Fatalf("Strategy = %q, want %q", calc.Strategy(), "stub")
	}
}

func TestCalculatorCollapsesFailure(t *testing.T) {
	logger := &recordingLogger{}
	calc, err := NewCalculator(&distance.MockFactory{
		FactoryName: "stub",
		Strategy:    &distance.MockStrategy{Err: &domain.TransportError{Err: errors.New("timeout")}},
	}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	km, ok := calc.CalculateDistance(context.Background(), domain.GeoPoint{}, domain.GeoPoint{})
	if ok {
		t.Fatal("failure reported as ok")
	}
	if km != 0 {
		t.Fatalf("collapsed result = %v, want 0", km)
	}

	// the failure must be reported, not silently dropped
	if got := countEvents(logger.events, "distance calculation failed"); got != 1 {
		t.Fatalf("failure events = %d, want 1", got)
	}
	if got := countEvents(logger.events, "calculated distance"); got != 0 {
		t.Fatalf("success events = %d, want 0", got)
	}
}

func TestCalculatorSetStrategySwitchesImmediately(t *testing.T) {
	first := &distance.MockStrategy{Km: 1}
	second := &distance.MockStrategy{Km: 2}

	calc, err := NewCalculator(&distance.MockFactory{FactoryName: "first", Strategy: first}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if km, _ := calc.CalculateDistance(context.Background(), domain.GeoPoint{}, domain.GeoPoint{}); km != 1 {
		t.Fatalf("distance = %v, want 1", km)
	}

	if err := calc.SetStrategy(&distance.MockFactory{FactoryName: "second", Strategy: second}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if km, _ := calc.CalculateDistance(context.Background(), domain.GeoPoint{}, domain.GeoPoint{}); km != 2 {
		t.Fatalf("distance after switch = %v, want 2", km)
	}
	if calc.Strategy() != "second" {
		t.Fatalf("Strategy = %q, want %q", calc.Strategy(), "second")
	}
	if first.Calls != 1 || second.Calls != 1 {
		t.Fatalf("calls = %d/%d, want 1/1", first.Calls, second.Calls)
	}
}

func TestCalculatorKeepsStrategyOnFactoryFailure(t *testing.T) {
	working := &distance.MockStrategy{Km: 7}
	calc, err := NewCalculator(&distance.MockFactory{FactoryName: "working", Strategy: working}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = calc.SetStrategy(&distance.MockFactory{FactoryName: "broken", Err: errors.New("no api key")})
	if err == nil {
		t.Fatal("expected factory error")
	}

	// the previous strategy must keep serving
	if km, ok := calc.CalculateDistance(context.Background(), domain.GeoPoint{}, domain.GeoPoint{}); !ok || km != 7 {
		t.Fatalf("result after failed switch = %v, %v", km, ok)
	}
	if calc.Strategy() != "working" {
		t.Fatalf("Strategy = %q, want %q", calc.Strategy(), "working")
	}
}

func TestNewCalculatorPropagatesFactoryFailure(t *testing.T) {
	_, err := NewCalculator(&distance.MockFactory{FactoryName: "broken", Err: errors.New("no api key")}, nil)
	if err == nil {
		t.Fatal("expected factory error")
	}
}

func TestNewCalculatorRejectsNilFactory(t *testing.T) {
	if _, err := NewCalculator(nil, nil); err == nil {
		t.Fatal("nil factory accepted")
	}
}

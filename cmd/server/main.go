package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"geo-distance-service/internal/adapters/distance"
	"geo-distance-service/internal/api"
	"geo-distance-service/internal/config"
	"geo-distance-service/internal/platform/telemetry"
	"geo-distance-service/internal/ports"
	"geo-distance-service/internal/services"
)

// main is the application composition root.
// It wires concrete strategies behind the factory registry and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	shutdownTracer, err := telemetry.InitTracer()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("tracer shutdown failed: %v", err)
		}
	}()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	factories := map[string]ports.StrategyFactory{}
	haversine := distance.NewHaversineFactory()
	factories[haversine.Name()] = haversine

	// The remote strategy only joins the registry when a key is configured.
	if apiKey, err := cfg.Get(config.KeyGoogleAPIKey); err == nil {
		var opts []distance.Option
		if baseURL, err := cfg.Get(config.KeyDistanceAPIURL); err == nil {
			opts = append(opts, distance.WithBaseURL(baseURL))
		}

		remote := distance.NewMatrixAPIFactory(apiKey, opts...)
		factories[remote.Name()] = remote
	} else {
		log.Printf("remote strategy disabled: %v", err)
	}

	name := "haversine"
	if v, err := cfg.Get(config.KeyDefaultStrategy); err == nil {
		name = v
	}
	factory, ok := factories[name]
	if !ok {
		log.Fatalf("strategy %q is not available", name)
	}

	calc, err := services.NewCalculator(factory, logger)
	if err != nil {
		log.Fatal(err)
	}

	port := "8080"
	if v, err := cfg.Get(config.KeyPort); err == nil {
		port = v
	}

	router := api.NewRouter(calc, factories)
	handler := otelhttp.NewHandler(router, "geo-distance-api")

	// WriteTimeout leaves room for the remote strategy's 10s client timeout.
	log.Printf("Server listening addr=:%s strategy=%s", port, calc.Strategy())
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	kitlog "github.com/go-kit/log"
	"github.com/joho/godotenv"

	"geo-distance-service/internal/adapters/distance"
	"geo-distance-service/internal/config"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/ports"
	"geo-distance-service/internal/services"
)

// distcalc computes one distance and exits. The strategy and API key come
// from the environment, the coordinates from the command line:
//
//	distcalc <origin-lat> <origin-lon> <destination-lat> <destination-lon>
func main() {
	_ = godotenv.Load()

	if len(os.Args) != 5 {
		fmt.Fprintf(os.Stderr, "usage: %s <origin-lat> <origin-lon> <destination-lat> <destination-lon>\n", os.Args[0])
		os.Exit(2)
	}

	coords := make([]float64, 4)
	for i, arg := range os.Args[1:5] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %q is not a number\n", arg)
			os.Exit(2)
		}
		coords[i] = v
	}

	origin, err := domain.NewGeoPoint(coords[0], coords[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: origin: %v\n", err)
		os.Exit(2)
	}
	destination, err := domain.NewGeoPoint(coords[2], coords[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: destination: %v\n", err)
		os.Exit(2)
	}

	cfg := config.Load()

	var factory ports.StrategyFactory = distance.NewHaversineFactory()
	if name, err := cfg.Get(config.KeyDefaultStrategy); err == nil && name == "remote" {
		apiKey, err := cfg.Get(config.KeyGoogleAPIKey)
		if err != nil {
			log.Fatalf("remote strategy needs an api key: %v", err)
		}

		var opts []distance.Option
		if baseURL, err := cfg.Get(config.KeyDistanceAPIURL); err == nil {
			opts = append(opts, distance.WithBaseURL(baseURL))
		}
		factory = distance.NewMatrixAPIFactory(apiKey, opts...)
	}

	// observability goes to stderr so stdout stays machine-readable
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	calc, err := services.NewCalculator(factory, logger)
	if err != nil {
		log.Fatal(err)
	}

	km, ok := calc.CalculateDistance(context.Background(), origin, destination)
	if !ok {
		fmt.Println("Error: distance could not be computed")
		os.Exit(1)
	}

	fmt.Printf("Calculated distance: %g km\n", km)
}

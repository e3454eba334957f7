package config

import (
	"errors"
	"fmt"
	"os"
)

// Keys understood by Load. Components ask for what they need; only the
// remote strategy requires google_api_key.
const (
	KeyGoogleAPIKey    = "google_api_key"
	KeyDistanceAPIURL  = "distance_api_url"
	KeyPort            = "port"
	KeyDefaultStrategy = "default_strategy"
)

// ErrKeyNotFound reports a lookup for a key the store was never given.
var ErrKeyNotFound = errors.New("config key not found")

// Store is a read-only key/value mapping fixed at construction. Lookups on
// absent keys fail instead of handing out empty strings.
type Store struct {
	values map[string]string
}

// NewStore copies values into a fresh store. The caller keeps ownership of
// its map; later changes to it do not reach the store.
func NewStore(values map[string]string) *Store {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Store{values: copied}
}

// Get returns the value bound to key, or ErrKeyNotFound naming the key.
func (s *Store) Get(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Load builds a store from the process environment. Variables that are
// unset or empty stay absent so Get reports them.
func Load() *Store {
	values := make(map[string]string)
	for key, env := range map[string]string{
		KeyGoogleAPIKey:    "GOOGLE_API_KEY",
		KeyDistanceAPIURL:  "DISTANCE_API_URL",
		KeyPort:            "PORT",
		KeyDefaultStrategy: "DISTANCE_STRATEGY",
	} {
		if v := os.Getenv(env); v != "" {
			values[key] = v
		}
	}
	return NewStore(values)
}

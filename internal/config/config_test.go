package config

import (
	"errors"
	"strings"
	"testing"
)

func TestStoreGet(t *testing.T) {
	s := NewStore(map[string]string{KeyGoogleAPIKey: "secret-key"})

	v, err := s.Get(KeyGoogleAPIKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "secret-key" {
		t.Fatalf("Get = %q, want %q", v, "secret-key")
	}
}

func TestStoreGetMissingKey(t *testing.T) {
	s := NewStore(nil)

	_, err := s.Get(KeyGoogleAPIKey)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("error = %v, want ErrKeyNotFound", err)
	}
	if !strings.Contains(err.Error(), KeyGoogleAPIKey) {
		t.Fatalf("error %q does not name the missing key", err)
	}
}

func TestStoreCopiesInput(t *testing.T) {
	src := map[string]string{KeyPort: "8080"}
	s := NewStore(src)

	src[KeyPort] = "9999"
	src[KeyGoogleAPIKey] = "sneaky"

	if v, _ := s.Get(KeyPort); v != "8080" {
		t.Fatalf("store leaked caller mutation, port = %q", v)
	}
	if _, err := s.Get(KeyGoogleAPIKey); !errors.Is(err, ErrKeyNotFound) {
		t.Fatal("store gained a key added after construction")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "from-env")
	t.Setenv("DISTANCE_API_URL", "")
	t.Setenv("PORT", "9090")
	t.Setenv("DISTANCE_STRATEGY", "")

	s := Load()

	if v, err := s.Get(KeyGoogleAPIKey); err != nil || v != "from-env" {
		t.Fatalf("google_api_key = %q, %v", v, err)
	}
	if v, err := s.Get(KeyPort); err != nil || v != "9090" {
		t.Fatalf("port = %q, %v", v, err)
	}
	// empty variables must behave exactly like unset ones
	if _, err := s.Get(KeyDistanceAPIURL); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("distance_api_url should be absent, got err %v", err)
	}
}

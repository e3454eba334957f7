package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"geo-distance-service/internal/api/dto"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/services"
)

type DistanceHandler struct {
	Calc *services.Calculator
}

// Calculate computes the distance between the two points in the request
// body. A collapsed calculation failure surfaces as 502 with an error body;
// the caller never receives a fabricated zero.
func (h *DistanceHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DistanceRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	origin, err := domain.NewGeoPoint(req.Origin.Lat, req.Origin.Lon)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "origin: "+err.Error())
		return
	}
	destination, err := domain.NewGeoPoint(req.Destination.Lat, req.Destination.Lon)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "destination: "+err.Error())
		return
	}

	km, ok := h.Calc.CalculateDistance(r.Context(), origin, destination)
	if !ok {
		writeError(w, r, http.StatusBadGateway, "distance unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		DistanceKm: km,
		Strategy:   h.Calc.Strategy(),
	})
}

package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"geo-distance-service/internal/api/dto"
	"geo-distance-service/internal/ports"
	"geo-distance-service/internal/services"
)

type StrategyHandler struct {
	Calc      *services.Calculator
	Factories map[string]ports.StrategyFactory
}

// Strategy reads or switches the calculator's active strategy.
func (h *StrategyHandler) Strategy(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *StrategyHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.StrategyResponse{Strategy: h.Calc.Strategy()})
}

func (h *StrategyHandler) put(w http.ResponseWriter, r *http.Request) {
	var req dto.StrategyRequest

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

	factory, ok := h.Factories[req.Strategy]
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown strategy")
		return
	}

	if err := h.Calc.SetStrategy(factory); err != nil {
		log.Printf("set strategy failed: strategy=%q err=%v", req.Strategy, err)
		writeError(w, r, http.StatusInternalServerError, "strategy unavailable")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.StrategyResponse{Strategy: h.Calc.Strategy()})
}

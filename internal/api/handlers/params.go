package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"pick-time-service/internal/api/dto"
	"pick-time-service/internal/domain"
	"pick-time-service/internal/ports"
)

// ParamsHandler exposes the estimator cost model for inspection and tuning.
type ParamsHandler struct {
	Store ports.ParamsStore
}

func (h *ParamsHandler) Handle(w http.ResponseWriter, r *http.Request) {
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

func (h *ParamsHandler) get(w http.ResponseWriter, r *http.Request) {
	params, err := h.Store.Params(r.Context())
	if err != nil {
		log.Printf("get params failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	revision, err := h.Store.Revision(r.Context())
	if err != nil {
		log.Printf("get params revision failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	summerMode, err := h.Store.SummerMode(r.Context())
	if err != nil {
		log.Printf("get summer mode failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ParamsResponse{
		Revision:   revision,
		SummerMode: summerMode,
		Params:     params,
	})
}

func (h *ParamsHandler) put(w http.ResponseWriter, r *http.Request) {
	var params domain.Params

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&params); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	params.Normalize()

	revision, err := h.Store.SaveParams(r.Context(), &params)
	if err != nil {
		log.Printf("save params failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	log.Printf("op=params.save revision=%d version=%s", revision, params.Version)
	writeJSON(w, r, http.StatusOK, dto.SaveParamsResponse{Revision: revision})
}

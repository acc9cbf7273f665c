package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"pick-time-service/internal/api/dto"
	"pick-time-service/internal/domain"
	"pick-time-service/internal/ports"
	"pick-time-service/internal/services"
	"strings"
)

type EstimateHandler struct {
	Repo   ports.OrderRepository
	Store  ports.ParamsStore
	Writer ports.EstimateWriter
}

// Estimate computes the completion-time estimate for one invoice and, when
// requested, persists it with an audit run.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateRequest

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

	invoiceNo := strings.TrimSpace(req.InvoiceNo)
	if invoiceNo == "" {
		writeError(w, r, http.StatusBadRequest, "invoice_no is required")
		return
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = "manual"
	}

	var (
		est   *domain.Estimate
		runID int64
		err   error
	)
	if req.Persist {
		est, runID, err = services.EstimateAndPersistInvoice(r.Context(), invoiceNo, reason, h.Repo, h.Store, h.Writer)
	} else {
		est, err = services.EstimateInvoice(r.Context(), invoiceNo, h.Repo, h.Store)
	}
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			writeError(w, r, http.StatusNotFound, "invoice not found")
			return
		}
		if errors.Is(err, services.ErrMissingParams) {
			log.Printf("estimate failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "estimator parameters are not configured")
			return
		}
		log.Printf("estimate failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := estimateResponse(est)
	if req.Persist {
		res.RunID = &runID
	}
	writeJSON(w, r, http.StatusOK, res)
}

func estimateResponse(est *domain.Estimate) dto.EstimateResponse {
	stops := make([]dto.StopResponse, 0, len(est.OrderedStops))
	for _, s := range est.OrderedStops {
		stops = append(stops, dto.StopResponse{
			Zone:     s.Zone,
			Corridor: s.Corridor,
			Bay:      s.Bay,
			Level:    s.Level,
			Pos:      s.Pos,
			Location: s.Location,
		})
	}

	lines := make([]dto.LineEstimateResponse, 0, len(est.Lines))
	for _, l := range est.Lines {
		lines = append(lines, dto.LineEstimateResponse{
			LineID:       l.LineID,
			ItemCode:     l.ItemCode,
			Location:     l.Location,
			Qty:          l.Qty,
			UnitType:     l.UnitType,
			PickSeconds:  l.PickSeconds,
			WalkSeconds:  l.WalkSeconds,
			TotalMinutes: l.Minutes(),
		})
	}

	return dto.EstimateResponse{
		InvoiceNo:       est.InvoiceNo,
		TotalSeconds:    est.TotalSeconds,
		TotalMinutes:    est.TotalMinutes,
		OverheadSeconds: est.OverheadSeconds,
		TravelSeconds:   est.TravelSeconds,
		PickSeconds:     est.PickSeconds,
		PackSeconds:     est.PackSeconds,
		SummerMode:      est.SummerMode,
		ParamsVersion:   est.ParamsVersion,
		Travel: dto.TravelDebugResponse{
			Stops:           est.Travel.Stops,
			ZoneSwitches:    est.Travel.ZoneSwitches,
			CorridorChanges: est.Travel.CorridorChanges,
			BaySteps:        est.Travel.BaySteps,
			PosSteps:        est.Travel.PosSteps,
			StairsSeconds:   est.Travel.StairsSeconds,
		},
		SpecialGroups: est.Pack.SpecialGroups,
		Stops:         stops,
		Lines:         lines,
	}
}

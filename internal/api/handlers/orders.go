package handlers

import (
	"log"
	"net/http"
	"pick-time-service/internal/api/dto"
	"pick-time-service/internal/ports"
	"strings"
)

// OrderHandler exposes read-only order line retrieval endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	invoiceNo := strings.TrimSpace(r.URL.Query().Get("invoice_no"))
	if invoiceNo == "" {
		writeError(w, r, http.StatusBadRequest, "invoice_no query parameter is required")
		return
	}

	exists, err := h.Repo.InvoiceExists(r.Context(), invoiceNo)
	if err != nil {
		log.Printf("list order lines failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !exists {
		writeError(w, r, http.StatusNotFound, "invoice not found")
		return
	}

	lines, err := h.Repo.ListLines(r.Context(), invoiceNo)
	if err != nil {
		log.Printf("list order lines failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrderLinesResponse{
		InvoiceNo: invoiceNo,
		Lines:     make([]dto.OrderLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		res.Lines = append(res.Lines, dto.OrderLineResponse{
			LineID:     l.LineID,
			InvoiceNo:  l.InvoiceNo,
			ItemCode:   l.ItemCode,
			Qty:        l.Qty,
			UnitType:   l.UnitType,
			Location:   l.Location,
			Zone:       l.Zone,
			Corridor:   l.Corridor,
			ExpMinutes: l.ExpMinutes,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/tillworks/receiptd/internal/discovery"
	"github.com/tillworks/receiptd/internal/logging"
	"github.com/tillworks/receiptd/internal/printer"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/printers", s.handleListPrinters)
	mux.HandleFunc("POST /api/print/test", s.handleTestPrint)
	return mux
}

type healthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", DB: "disabled"}
	if s.db != nil {
		if err := s.db.Probe(r.Context()); err != nil {
			logging.Warn("database probe failed", zap.Error(err))
			resp.DB = "down"
		} else {
			resp.DB = "ok"
		}
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// candidateJSON is the wire shape of one discovered printer. The transport
// locator is what the print layer consumes; confidence and notes are for the
// operator picking a device.
type candidateJSON struct {
	Transport   string   `json:"transport"`
	Locator     string   `json:"locator"`
	DisplayName string   `json:"display_name,omitempty"`
	Serial      string   `json:"serial,omitempty"`
	VendorID    string   `json:"vendor_id,omitempty"`
	ProductID   string   `json:"product_id,omitempty"`
	Confidence  int      `json:"confidence"`
	Notes       []string `json:"notes"`
}

type listPrintersResponse struct {
	Printers []candidateJSON `json:"printers"`
	Count    int             `json:"count"`
	Message  string          `json:"message,omitempty"`
}

func (s *Server) handleListPrinters(w http.ResponseWriter, r *http.Request) {
	cands, err := s.provider.Discover(r.Context())
	if err != nil {
		logging.Error("discovery failed", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "could not enumerate printers on this host")
		return
	}

	resp := listPrintersResponse{
		Printers: make([]candidateJSON, 0, len(cands)),
		Count:    len(cands),
	}
	for _, c := range cands {
		resp.Printers = append(resp.Printers, toCandidateJSON(c))
	}
	if len(cands) == 0 {
		// Distinct from a discovery failure: the scan worked, nothing matched
		resp.Message = "no printers found"
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func toCandidateJSON(c discovery.Candidate) candidateJSON {
	return candidateJSON{
		Transport:   c.Transport.Kind().String(),
		Locator:     c.Transport.String(),
		DisplayName: c.DisplayName,
		Serial:      c.Serial,
		VendorID:    c.VendorID,
		ProductID:   c.ProductID,
		Confidence:  c.Confidence,
		Notes:       c.Notes,
	}
}

type testPrintRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleTestPrint(w http.ResponseWriter, r *http.Request) {
	var req testPrintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		writeError(w, r, http.StatusBadRequest, "request must carry a device node path")
		return
	}

	adapter, err := printer.OpenNode(req.Path)
	if err != nil {
		logging.Error("failed to open printer", zap.String("path", req.Path), zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "could not open printer device")
		return
	}
	defer adapter.Close()

	if err := printer.PrintTestPage(adapter, req.Path); err != nil {
		logging.Error("test print failed", zap.String("path", req.Path), zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "test print failed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "printed"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn("failed to encode response", zap.Error(err))
	}
	logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, status)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

package api

import (
	"encoding/json"
	"net/http"

	"entropylab/internal/model"
	"entropylab/internal/service"
	"entropylab/internal/store"
)

type APIHandler struct {
	Analysis *service.AnalysisService
	Reports  *store.ReportStore
}

func NewAPIHandler(analysis *service.AnalysisService, reports *store.ReportStore) *APIHandler {
	return &APIHandler{Analysis: analysis, Reports: reports}
}

func (h *APIHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze", h.handleAnalyze)
	mux.HandleFunc("POST /api/normalize", h.handleNormalize)
	mux.HandleFunc("GET /api/reports", h.handleListReports)
	mux.HandleFunc("GET /api/reports/{id}", h.handleGetReport)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func parseJSON(r *http.Request, dest interface{}) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

func (h *APIHandler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := parseJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	analysis, err := h.Analysis.Analyze(r.Context(), req.Text)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	report := h.Reports.Add(analysis.Report(req.Tables))
	respondJSON(w, http.StatusOK, report)
}

func (h *APIHandler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req model.NormalizeRequest
	if err := parseJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	stream, noSpace := h.Analysis.Normalize(req.Text)
	respondJSON(w, http.StatusOK, model.NormalizeResponse{Text: stream, NoSpace: noSpace})
}

func (h *APIHandler) handleListReports(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"ids": h.Reports.IDs()})
}

func (h *APIHandler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, ok := h.Reports.Get(r.PathValue("id"))
	if !ok {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "report not found"})
		return
	}
	respondJSON(w, http.StatusOK, report)
}

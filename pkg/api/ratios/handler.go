// Package ratios exposes the ratio engine over HTTP. The handlers are thin:
// parse the caller's input, run the engine, optionally persist, respond.
package ratios

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"finratio/pkg/core/parse"
	"finratio/pkg/core/ratio"
	"finratio/pkg/core/render"
	"finratio/pkg/core/store"
)

var reportStore *store.ReportStore

// InitHandler wires the optional report store. A nil store disables
// persistence; analysis still works.
func InitHandler(s *store.ReportStore) {
	reportStore = s
}

// AnalyzeRequest wraps raw input. "data" may be a JSON record, Hjson, or
// free text; a bare record object in the body works too.
type AnalyzeRequest struct {
	Data string `json:"data"`
}

// AnalyzeResponse carries the computed report and, when persistence is
// configured, the stored report id.
type AnalyzeResponse struct {
	ID     string        `json:"id,omitempty"`
	Report *ratio.Report `json:"report"`
}

// errorEnvelope is the top-level failure shape: the error, a fixed message,
// and a truncated echo of what the caller sent.
type errorEnvelope struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	InputReceived string `json:"input_received"`
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorEnvelope(w, http.StatusBadRequest, err, "")
		return
	}
	input := extractInput(body)

	record, err := parse.ParseRecord(input)
	if err != nil {
		writeErrorEnvelope(w, http.StatusBadRequest, err, input)
		return
	}

	engine := ratio.NewEngine(record)
	report := engine.Analyze()
	fmt.Printf("[ANALYZE] %d fields, %d diagnostics\n", len(record), len(report.ValidationErrors))

	resp := AnalyzeResponse{Report: report}
	if reportStore != nil {
		id, err := reportStore.Save(r.Context(), record, report)
		if err != nil {
			fmt.Printf("[WARNING] Failed to persist report: %v\n", err)
		} else {
			resp.ID = id
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func HandleGetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if reportStore == nil {
		http.Error(w, "report storage not configured", http.StatusServiceUnavailable)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	entry, err := reportStore.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if r.URL.Query().Get("format") == "markdown" {
		md := render.CleanMarkdown(render.Markdown(entry.Report))
		if !render.ValidateMarkdown(md) {
			http.Error(w, "report failed markdown rendering", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		fmt.Fprintln(w, md)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

// extractInput accepts either the {"data": "..."} wrapper or a bare record
// object as the request body.
func extractInput(body []byte) string {
	var req AnalyzeRequest
	if err := json.Unmarshal(body, &req); err == nil && req.Data != "" {
		return req.Data
	}
	return string(body)
}

func writeErrorEnvelope(w http.ResponseWriter, status int, err error, input string) {
	envelope := errorEnvelope{
		Error:         err.Error(),
		Message:       "Failed to calculate financial ratios",
		InputReceived: truncateInput(input),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope)
}

// truncateInput echoes at most 100 characters of the caller's input,
// cutting on a rune boundary so the envelope stays valid UTF-8.
func truncateInput(input string) string {
	trimmed := strings.TrimSpace(input)
	runes := []rune(trimmed)
	if len(runes) > 100 {
		return string(runes[:100]) + "..."
	}
	return trimmed
}

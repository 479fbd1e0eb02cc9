package handler

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"jobtrack/internal/ats"
	"jobtrack/internal/httputil"
	"jobtrack/internal/llm"
)

// ProxyHandler forwards prompts to the language-model API for the
// cover-letter and ATS-score features. It never reads or writes the job
// or document stores.
type ProxyHandler struct {
	client *llm.Client
	logger *slog.Logger
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(client *llm.Client, logger *slog.Logger) *ProxyHandler {
	return &ProxyHandler{
		client: client,
		logger: logger,
	}
}

type generateCoverRequest struct {
	Prompt string `json:"prompt"`
}

type generateCoverResponse struct {
	Text string `json:"text"`
}

// GenerateCover forwards the prompt and returns the model's text
// POST /api/generate-cover
func (h *ProxyHandler) GenerateCover(w http.ResponseWriter, r *http.Request) {
	var req generateCoverRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Prompt == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Missing prompt")
		return
	}

	text, err := h.client.Complete(r.Context(), "cover-letter", req.Prompt)
	if err != nil {
		h.logger.Error("cover letter generation failed", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httputil.RespondJSON(w, http.StatusOK, generateCoverResponse{Text: text})
}

type atsScoreRequest struct {
	PDFBase64      string `json:"pdfBase64"`
	JobDescription string `json:"jobDescription"`
}

type atsScoreResponse struct {
	Result string `json:"result"`
}

// ATSScore extracts the résumé text and asks the model for a JSON-shaped
// score. The model's output is returned as text; the UI parses it.
// POST /api/ats-score
func (h *ProxyHandler) ATSScore(w http.ResponseWriter, r *http.Request) {
	var req atsScoreRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PDFBase64 == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Resume PDF is required")
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.PDFBase64)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid base64 PDF")
		return
	}

	resumeText, err := ats.ExtractText(raw)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unreadable PDF: "+err.Error())
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" {
		jobDescription = "(none provided)"
	}

	prompt := fmt.Sprintf(`
Return ONLY JSON:

{
  "score": number,
  "strengths": ["text"],
  "missing_keywords": ["text"],
  "suggestions": ["text"]
}

Resume:
%s

Job Description:
%s
`, resumeText, jobDescription)

	result, err := h.client.Complete(r.Context(), "ats-score", prompt)
	if err != nil {
		h.logger.Error("ats scoring failed", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httputil.RespondJSON(w, http.StatusOK, atsScoreResponse{Result: result})
}

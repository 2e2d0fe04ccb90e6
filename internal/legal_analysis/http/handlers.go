package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpapi "github.com/legal-assistant/legal-assistant-backend/internal/api/http"
	"github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/domain"
	"github.com/legal-assistant/legal-assistant-backend/internal/reqctx"
)

const caseDescriptionKey = "case_description"

// Analyzer is the invocation boundary to the reasoning pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, req domain.CaseRequest) (domain.AnalysisResult, error)
}

type Handler struct {
	analyzer     Analyzer
	maxBodyBytes int64
}

func New(analyzer Analyzer, maxBodyBytes int64) *Handler {
	return &Handler{analyzer: analyzer, maxBodyBytes: maxBodyBytes}
}

// Analyze validates the case description and runs one analysis for it.
func (h *Handler) Analyze(c *gin.Context) {
	req, err := h.bindCaseRequest(c)
	if err != nil {
		httpapi.RenderError(c, err)
		return
	}

	res, err := h.analyzer.Analyze(c.Request.Context(), req)
	if err != nil {
		// anything the invoker returns is reported as an upstream failure
		if domain.KindOf(err) == domain.KindInternal {
			err = domain.PipelineError(err)
		}
		httpapi.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, domain.Succeeded(res.Text))
}

func (h *Handler) bindCaseRequest(c *gin.Context) (domain.CaseRequest, error) {
	if c.Request.Body == nil {
		return domain.CaseRequest{}, domain.ErrMissingDescription
	}
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[warn] request_id=%s operation=analyze read body: %v", reqctx.FromGin(c), err)
		return domain.CaseRequest{}, domain.ErrMissingDescription
	}
	return ParseCaseRequest(body)
}

// ParseCaseRequest extracts and trims case_description from a JSON body.
func ParseCaseRequest(body []byte) (domain.CaseRequest, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return domain.CaseRequest{}, domain.ErrMissingDescription
	}

	raw, ok := payload[caseDescriptionKey]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return domain.CaseRequest{}, domain.ErrMissingDescription
	}

	var description string
	if err := json.Unmarshal(raw, &description); err != nil {
		return domain.CaseRequest{}, domain.ErrMissingDescription
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return domain.CaseRequest{}, domain.ErrEmptyDescription
	}
	return domain.CaseRequest{CaseDescription: description}, nil
}

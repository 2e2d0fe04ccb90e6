package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/domain"
	"github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/pipeline"
)

// Invoker hands validated case descriptions to the reasoning pipeline.
type Invoker struct {
	pipeline pipeline.Pipeline
}

func NewInvoker(p pipeline.Pipeline) *Invoker {
	return &Invoker{pipeline: p}
}

// Analyze runs the pipeline once for req. Every failure, including a
// panic inside the pipeline, is returned as a domain.KindPipeline error
// carrying the original message.
func (inv *Invoker) Analyze(ctx context.Context, req domain.CaseRequest) (res domain.AnalysisResult, err error) {
	logger := NewLogger(ctx)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = domain.PipelineError(panicError{value: r})
		}
		if err != nil {
			logger.LogError("analyze", err)
			return
		}
		logger.LogInfof("analyze", "completed in %s result_len=%d", time.Since(start), len(res.Text))
	}()

	logger.LogInfof("analyze", "invoking pipeline description_len=%d", len(req.CaseDescription))
	out, runErr := inv.pipeline.Run(ctx, pipeline.Inputs{pipeline.InputKey: req.CaseDescription})
	if runErr != nil {
		return domain.AnalysisResult{}, domain.PipelineError(runErr)
	}
	return domain.AnalysisResult{Text: Stringify(out)}, nil
}

// Stringify renders a pipeline result as text.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

type panicError struct {
	value any
}

func (p panicError) Error() string {
	if err, ok := p.value.(error); ok {
		return err.Error()
	}
	return strings.TrimSpace(fmt.Sprint(p.value))
}

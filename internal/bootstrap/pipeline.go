package bootstrap

import (
	"fmt"

	"github.com/legal-assistant/legal-assistant-backend/config"
	"github.com/legal-assistant/legal-assistant-backend/internal/legal_analysis/pipeline"
)

// OpenPipeline builds the process-wide reasoning pipeline selected by cfg.
func OpenPipeline(cfg config.PipelineConfig) (pipeline.Pipeline, error) {
	switch cfg.Backend {
	case config.BackendHTTP, "":
		if cfg.URL == "" {
			return nil, fmt.Errorf("PIPELINE_URL is not set")
		}
		return pipeline.NewHTTPClient(cfg.URL, cfg.Timeout), nil
	case config.BackendPython:
		bridge, err := pipeline.NewPythonBridge(cfg.PythonExec, cfg.Script, cfg.WorkDir, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("python pipeline: %w", err)
		}
		return bridge, nil
	default:
		return nil, fmt.Errorf("unknown pipeline backend %q", cfg.Backend)
	}
}

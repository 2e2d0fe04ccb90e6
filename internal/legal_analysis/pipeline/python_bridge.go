package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// waitDelay bounds how long a killed script may hold its output pipes.
const waitDelay = 2 * time.Second

// PythonBridge runs the pipeline as a Python script. The script reads
// {"inputs": {...}} on stdin and prints {"result": ..., "error": ...}.
type PythonBridge struct {
	pythonExec string
	scriptPath string
	workingDir string
	timeout    time.Duration
}

func NewPythonBridge(pythonExec, scriptPath, workingDir string, timeout time.Duration) (*PythonBridge, error) {
	if scriptPath == "" {
		return nil, errors.New("no pipeline script configured")
	}
	if pythonExec == "" {
		pythonExec = "python3"
	}
	// absolute: the interpreter runs inside workingDir
	abs, err := filepath.Abs(ResolveScriptPath(workingDir, scriptPath))
	if err != nil {
		return nil, fmt.Errorf("resolve pipeline script: %w", err)
	}
	return &PythonBridge{
		pythonExec: pythonExec,
		scriptPath: abs,
		workingDir: workingDir,
		timeout:    timeout,
	}, nil
}

func (b *PythonBridge) Run(ctx context.Context, inputs Inputs) (any, error) {
	encoded, err := json.Marshal(request{Inputs: inputs})
	if err != nil {
		return nil, fmt.Errorf("encode pipeline request: %w", err)
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	command := exec.CommandContext(ctx, b.pythonExec, b.scriptPath)
	if b.workingDir != "" {
		command.Dir = b.workingDir
	}
	command.Stdin = bytes.NewReader(encoded)
	command.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("pipeline script aborted: %w", ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("pipeline script failed: %v: %s", err, msg)
		}
		return nil, fmt.Errorf("pipeline script failed: %w", err)
	}

	var out reply
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("decode pipeline output: %w", err)
	}
	if out.Error != "" {
		return nil, errors.New(out.Error)
	}
	return out.result()
}

// ResolveScriptPath joins a relative script path onto baseDir.
func ResolveScriptPath(baseDir, script string) string {
	if script == "" {
		return ""
	}
	if filepath.IsAbs(script) || baseDir == "" {
		return script
	}
	return filepath.Join(baseDir, script)
}

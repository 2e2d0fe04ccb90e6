package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const kickoffPath = "/kickoff"

// HTTPClient runs the pipeline hosted behind an HTTP endpoint.
type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Run(ctx context.Context, inputs Inputs) (any, error) {
	b, err := json.Marshal(request{Inputs: inputs})
	if err != nil {
		return nil, fmt.Errorf("encode pipeline request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+kickoffPath, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("pipeline request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read pipeline response: %w", err)
	}

	var out reply
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode >= 400 {
		if decodeErr == nil && out.message() != "" {
			return nil, errors.New(out.message())
		}
		return nil, fmt.Errorf("pipeline returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode pipeline response: %w", decodeErr)
	}
	if out.Error != "" {
		return nil, errors.New(out.Error)
	}
	return out.result()
}

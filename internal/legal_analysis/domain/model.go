package domain

// CaseRequest is the validated input of an analyze call.
type CaseRequest struct {
	CaseDescription string
}

// AnalysisResult is the pipeline output rendered as text. Its content is
// opaque to the service.
type AnalysisResult struct {
	Text string
}

// ResponseEnvelope is the JSON shape of every API response. Field order
// fixes the key order on the wire.
type ResponseEnvelope struct {
	Success bool    `json:"success"`
	Result  *string `json:"result,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Succeeded(result string) ResponseEnvelope {
	return ResponseEnvelope{Success: true, Result: &result}
}

func Failed(message string) ResponseEnvelope {
	return ResponseEnvelope{Success: false, Error: &message}
}

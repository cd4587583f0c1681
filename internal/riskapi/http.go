package riskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
)

// HTTPClient talks to the risk service over its multipart HTTP API.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client from the given config.
func NewHTTPClient(cfg Config) *HTTPClient {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(base, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Analyze posts the submission to /api/analyze as multipart form data.
// The three scores travel as stringified integers; the audio part is
// omitted entirely when the submission carries no sample.
func (c *HTTPClient) Analyze(ctx context.Context, sub Submission) (*Verdict, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]int{
		"word_score":    sub.WordScore,
		"memory_score":  sub.MemoryScore,
		"reaction_time": sub.ReactionTimeMs,
	}
	for _, name := range []string{"word_score", "memory_score", "reaction_time"} {
		if err := mw.WriteField(name, strconv.Itoa(fields[name])); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if sub.Audio != nil {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(
			`form-data; name="audio_file"; filename=%q`, sub.Audio.Filename))
		hdr.Set("Content-Type", "audio/wav")
		part, err := mw.CreatePart(hdr)
		if err != nil {
			return nil, fmt.Errorf("create audio part: %w", err)
		}
		if _, err := part.Write(sub.Audio.Data); err != nil {
			return nil, fmt.Errorf("write audio part: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, &ErrRejected{Status: resp.StatusCode, Detail: errorDetail(raw)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &ErrUnavailable{Status: resp.StatusCode}
	}

	if err := validateVerdict(raw); err != nil {
		return nil, err
	}

	var v Verdict
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}
	return &v, nil
}

// Health hits the service's health endpoint.
func (c *HTTPClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &ErrUnavailable{Status: resp.StatusCode}
	}
	return nil
}

// errorDetail extracts the service's error message from a failure body.
func errorDetail(raw []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	detail := strings.TrimSpace(string(raw))
	if len(detail) > 200 {
		detail = detail[:200]
	}
	return detail
}

// Package riskapi is the client for the remote risk-assessment service.
// The service receives the three task scores plus an optional voice sample
// and returns a risk verdict; all scoring models live on the server side.
package riskapi

import "context"

// Client is the core abstraction for talking to the risk service.
type Client interface {
	// Analyze submits a completed screening and returns the verdict.
	Analyze(ctx context.Context, sub Submission) (*Verdict, error)

	// Health checks that the service is reachable and ready.
	Health(ctx context.Context) error
}

// Submission is the payload for one screening run.
type Submission struct {
	// ScreeningID groups local log events; it is not sent to the service.
	ScreeningID string

	// WordScore is the word-unscramble similarity percentage, 0-100.
	WordScore int

	// MemoryScore is the highest memory level fully repeated, 0-9.
	MemoryScore int

	// ReactionTimeMs is the measured reaction time in milliseconds.
	ReactionTimeMs int

	// Audio is the optional voice sample. Nil means the part is omitted
	// from the request entirely.
	Audio *AudioFile
}

// AudioFile is an opaque voice recording. The filename must end in ".wav";
// the bytes are never inspected locally.
type AudioFile struct {
	Filename string
	Data     []byte
}

// Verdict is the service's structured response.
type Verdict struct {
	Success bool `json:"success"`

	// RiskScore is the combined risk percentage, 0-100. The service
	// rounds to two decimals, so this is decoded as a float.
	RiskScore float64 `json:"risk_score"`

	// RiskCategory is "Low Risk", "Moderate Risk" or "High Risk".
	RiskCategory string `json:"risk_category"`

	// CognitiveRisk is the cognitive-only risk percentage, 0-100.
	CognitiveRisk float64 `json:"cognitive_risk"`

	// SpeechAnalyzed reports whether the service used the audio sample.
	SpeechAnalyzed bool `json:"speech_analyzed"`
}

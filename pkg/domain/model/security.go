package model

// ValidationResult is the verdict of a security screen over untrusted text.
// Confidence encodes which stage produced the verdict: 0.8 for a pattern
// match, 0.95 for a classifier judgment, 0.7 for the heuristic-only default.
type ValidationResult struct {
	Safe       bool    `json:"safe"`
	Reason     string  `json:"reason,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Classification is the raw judgment returned by a text classifier backend.
type Classification struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason,omitempty"`
}

package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	Owner      string
	RepoName   string
	BranchName string
	CacheKey   string
	RequestID  string

	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	GeminiAPIKey        string
)

// NewRequestID returns a new random request ID
func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GeminiAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GeminiAPIKey) String() string {
	return "***********"
}

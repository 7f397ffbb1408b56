package model

import (
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// FetchDocsInput names either a registered library or an explicit descriptor.
// Query optionally narrows the returned content; Validate runs the security
// screen over the result.
type FetchDocsInput struct {
	Library    string
	Descriptor *RepositoryDescriptor
	Query      string
	Validate   bool
}

func (x *FetchDocsInput) ValidateInput() error {
	if x.Library == "" && x.Descriptor == nil {
		return goerr.Wrap(types.ErrInvalidOption, "either library or descriptor is required")
	}
	if x.Descriptor != nil {
		if err := x.Descriptor.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type FetchDocsOutput struct {
	Descriptor RepositoryDescriptor `json:"descriptor"`
	Content    string               `json:"content"`
	// Cached is true when the content came from the cache, whether fresh or
	// served stale as a fallback for a failed remote fetch.
	Cached     bool              `json:"cached"`
	Validation *ValidationResult `json:"validation,omitempty"`
}

package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RepositoryDescriptor identifies a fetchable documentation source: a GitHub
// repository, optionally narrowed to a subpath and pinned to a branch.
// A descriptor is an immutable value once constructed.
type RepositoryDescriptor struct {
	Owner  types.Owner      `json:"owner"`
	Repo   types.RepoName   `json:"repo"`
	Path   string           `json:"path,omitempty"`
	Branch types.BranchName `json:"branch,omitempty"`
}

func (x RepositoryDescriptor) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo is empty")
	}
	return nil
}

// CacheKey derives the storage key for the descriptor. The path component
// collapses to "root" when the descriptor points at the repository root, and
// slashes are flattened so the key is safe as a single file name.
func (x RepositoryDescriptor) CacheKey() types.CacheKey {
	p := strings.Trim(x.Path, "/")
	if p == "" {
		p = "root"
	} else {
		p = strings.ReplaceAll(p, "/", "-")
	}
	return types.CacheKey(fmt.Sprintf("%s_%s_%s", x.Owner, x.Repo, p))
}

func (x RepositoryDescriptor) String() string {
	s := fmt.Sprintf("%s/%s", x.Owner, x.Repo)
	if x.Path != "" {
		s += "/" + strings.Trim(x.Path, "/")
	}
	return s
}

package usecase

import (
	"time"

	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/infra"
	"github.com/m-mizutani/docdive/pkg/registry"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long a cache entry counts as fresh.
const DefaultCacheTTL = 24 * time.Hour

type UseCase struct {
	clients  *infra.Clients
	registry *registry.Registry
	cacheTTL time.Duration
	flight   singleflight.Group
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithRegistry injects a shared registry. Without it the use case owns a
// fresh one seeded from the built-in table.
func WithRegistry(reg *registry.Registry) Option {
	return func(x *UseCase) {
		x.registry = reg
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(x *UseCase) {
		x.cacheTTL = ttl
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:  clients,
		registry: registry.New(),
		cacheTTL: DefaultCacheTTL,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func (x *UseCase) ListLibraries() []*model.Library {
	return x.registry.Libraries()
}

func (x *UseCase) AddLibrary(name string, desc model.RepositoryDescriptor) {
	x.registry.AddCustom(name, desc)
}

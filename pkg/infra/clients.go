package infra

import (
	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/repository/memory"
)

type Clients struct {
	githubDocs interfaces.GitHubDocs
	classifier interfaces.TextClassifier
	cacheStore interfaces.CacheStore
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		cacheStore: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubDocs() interfaces.GitHubDocs {
	return x.githubDocs
}

// Classifier returns nil when no classifier is configured; callers treat a
// nil classifier as "stage absent".
func (x *Clients) Classifier() interfaces.TextClassifier {
	return x.classifier
}

func (x *Clients) CacheStore() interfaces.CacheStore {
	return x.cacheStore
}

func WithGitHubDocs(client interfaces.GitHubDocs) Option {
	return func(x *Clients) {
		x.githubDocs = client
	}
}

func WithClassifier(client interfaces.TextClassifier) Option {
	return func(x *Clients) {
		x.classifier = client
	}
}

func WithCacheStore(store interfaces.CacheStore) Option {
	return func(x *Clients) {
		x.cacheStore = store
	}
}

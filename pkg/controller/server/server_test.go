package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/docdive/pkg/controller/server"
	"github.com/m-mizutani/docdive/pkg/domain/mock"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestHealth(t *testing.T) {
	s := server.New(&mock.UseCaseMock{})

	rec := httptest.NewRecorder()
	s.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	gt.V(t, rec.Code).Equal(http.StatusOK)
}

func TestFetchDocsEndpoint(t *testing.T) {
	uc := &mock.UseCaseMock{
		FetchDocsFunc: func(ctx context.Context, input *model.FetchDocsInput) (*model.FetchDocsOutput, error) {
			gt.V(t, input.Descriptor.Owner).Equal(types.Owner("acme"))
			gt.V(t, input.Query).Equal("install guide")
			return &model.FetchDocsOutput{
				Descriptor: *input.Descriptor,
				Content:    "docs body",
				Cached:     true,
			}, nil
		},
	}
	s := server.New(uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/docs?owner=acme&repo=widgets&path=docs&query=install+guide", nil)
	s.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)

	var out model.FetchDocsOutput
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	gt.V(t, out.Content).Equal("docs body")
	gt.True(t, out.Cached)
}

func TestFetchDocsUnknownLibrary(t *testing.T) {
	uc := &mock.UseCaseMock{
		FetchDocsFunc: func(ctx context.Context, input *model.FetchDocsInput) (*model.FetchDocsOutput, error) {
			return nil, goerr.Wrap(types.ErrLibraryNotFound, "library is not registered")
		},
	}
	s := server.New(uc)

	rec := httptest.NewRecorder()
	s.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs?library=nope", nil))
	gt.V(t, rec.Code).Equal(http.StatusNotFound)
}

func TestFetchDocsRemoteFailure(t *testing.T) {
	uc := &mock.UseCaseMock{
		FetchDocsFunc: func(ctx context.Context, input *model.FetchDocsInput) (*model.FetchDocsOutput, error) {
			return nil, goerr.New("remote unreachable")
		},
	}
	s := server.New(uc)

	rec := httptest.NewRecorder()
	s.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs?owner=acme&repo=widgets", nil))
	gt.V(t, rec.Code).Equal(http.StatusBadGateway)
}

func TestSearchEndpoint(t *testing.T) {
	uc := &mock.UseCaseMock{
		SearchReposFunc: func(ctx context.Context, query string, limit int) []model.RepositoryDescriptor {
			gt.V(t, query).Equal("http client")
			gt.V(t, limit).Equal(3)
			return []model.RepositoryDescriptor{
				{Owner: "acme", Repo: "fetchlib", Path: "README.md"},
			}
		},
	}
	s := server.New(uc)

	rec := httptest.NewRecorder()
	s.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=http+client&limit=3", nil))
	gt.V(t, rec.Code).Equal(http.StatusOK)

	t.Run("missing query", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search", nil))
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestLibrariesEndpoints(t *testing.T) {
	added := map[string]model.RepositoryDescriptor{}
	uc := &mock.UseCaseMock{
		ListLibrariesFunc: func() []*model.Library {
			return []*model.Library{
				{Name: "react", Category: "frontend"},
			}
		},
		AddLibraryFunc: func(name string, desc model.RepositoryDescriptor) {
			added[name] = desc
		},
	}
	s := server.New(uc)

	rec := httptest.NewRecorder()
	s.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/libraries", nil))
	gt.V(t, rec.Code).Equal(http.StatusOK)

	body := gt.R1(json.Marshal(map[string]string{
		"name":  "acme-widgets",
		"owner": "acme",
		"repo":  "widgets",
		"path":  "docs",
	})).NoError(t)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/libraries", bytes.NewReader(body))
	s.Mux().ServeHTTP(rec, req)
	gt.V(t, rec.Code).Equal(http.StatusCreated)
	gt.V(t, added["acme-widgets"].Owner).Equal(types.Owner("acme"))

	t.Run("invalid body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/libraries", bytes.NewReader([]byte(`{"name":"x"}`)))
		s.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

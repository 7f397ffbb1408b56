package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/domain/types"
	"github.com/m-mizutani/docdive/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

func handleFetchDocs(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		input := &model.FetchDocsInput{
			Library:  q.Get("library"),
			Query:    q.Get("query"),
			Validate: q.Get("validate") == "true",
		}
		if owner := q.Get("owner"); owner != "" {
			input.Descriptor = &model.RepositoryDescriptor{
				Owner:  types.Owner(owner),
				Repo:   types.RepoName(q.Get("repo")),
				Path:   q.Get("path"),
				Branch: types.BranchName(q.Get("branch")),
			}
		}

		out, err := uc.FetchDocs(r.Context(), input)
		if err != nil {
			switch {
			case errors.Is(err, types.ErrLibraryNotFound):
				writeError(w, http.StatusNotFound, err)
			case errors.Is(err, types.ErrInvalidOption), errors.Is(err, types.ErrValidationFailed):
				writeError(w, http.StatusBadRequest, err)
			default:
				errutil.HandleError(r.Context(), "fail to fetch docs", err)
				writeError(w, http.StatusBadGateway, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func handleSearch(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			writeError(w, http.StatusBadRequest, goerr.Wrap(types.ErrInvalidOption, "q is required"))
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, goerr.Wrap(types.ErrInvalidOption, "limit must be an integer"))
				return
			}
			limit = v
		}

		repos := uc.SearchRepos(r.Context(), query, limit)
		writeJSON(w, http.StatusOK, map[string]any{
			"query": query,
			"repos": repos,
		})
	}
}

func handleListLibraries(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		libs := uc.ListLibraries()
		writeJSON(w, http.StatusOK, map[string]any{
			"total":     len(libs),
			"libraries": libs,
		})
	}
}

type addLibraryRequest struct {
	Name   string `json:"name"`
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Path   string `json:"path,omitempty"`
	Branch string `json:"branch,omitempty"`
}

func handleAddLibrary(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addLibraryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, goerr.Wrap(err, "invalid request body"))
			return
		}

		desc := model.RepositoryDescriptor{
			Owner:  types.Owner(req.Owner),
			Repo:   types.RepoName(req.Repo),
			Path:   req.Path,
			Branch: types.BranchName(req.Branch),
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, goerr.Wrap(types.ErrInvalidOption, "name is required"))
			return
		}
		if err := desc.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		uc.AddLibrary(req.Name, desc)
		writeJSON(w, http.StatusCreated, map[string]string{"status": "registered", "name": req.Name})
	}
}

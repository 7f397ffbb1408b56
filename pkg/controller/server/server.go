package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/docdive/pkg/domain/interfaces"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/docs", handleFetchDocs(uc))
		r.Get("/search", handleSearch(uc))
		r.Route("/libraries", func(r chi.Router) {
			r.Get("/", handleListLibraries(uc))
			r.Post("/", handleAddLibrary(uc))
		})
	})

	return &Server{mux: r}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

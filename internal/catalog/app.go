package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"OnlineStore/pkg/kit"
)

const maxBodyBytes = 1 << 20

// ProductService is what the HTTP layer needs from the service layer.
type ProductService interface {
	ListAll() []Product
	GetOrFail(id *int64) (Product, error)
	Create(p Product) Product
	Count() int
	Ping(ctx context.Context) error
}

type Server struct {
	Service ProductService
	Log     *zap.Logger

	// CreateLimiter, when set, wraps the create endpoint only. The read
	// endpoints stay unthrottled.
	CreateLimiter func(http.Handler) http.Handler
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Service.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/products", func(rr chi.Router) {
		rr.Get("/", s.list)
		rr.Get("/{id}", s.get)

		if s.CreateLimiter != nil {
			rr.With(s.CreateLimiter).Post("/", s.create)
		} else {
			rr.Post("/", s.create)
		}
	})

	return r
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Service.ListAll())
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// a path segment that is not a number denotes no product
		w.WriteHeader(http.StatusNotFound)
		return
	}

	p, err := s.Service.GetOrFail(&id)
	if errors.Is(err, ErrProductNotFound) {
		// 404 with an empty body; only a genuine miss lands here
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get product failed", zap.Error(err), zap.Int64("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var p Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	saved := s.Service.Create(p)
	kit.WriteCreatedJSON(w, fmt.Sprintf("/api/products/%d", *saved.ID), saved)
}

package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dogs-registry/internal/errs"
	"dogs-registry/internal/middleware"
	"dogs-registry/internal/platform/httpjson"
	"dogs-registry/internal/platform/logger"
	"dogs-registry/internal/platform/validate"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	// Breeds: lectura pública + alta autenticada
	r.Route("/api/breed", func(br chi.Router) {
		br.Get("/", listHandler(svc, KindBreed, log))
		br.Post("/", createHandler(svc, KindBreed, log))
		br.Get("/{entryID}", getHandler(svc, KindBreed, log))
	})

	// Countries y hobbies son de solo lectura por HTTP (se cargan con seed)
	for _, kind := range []Kind{KindCountry, KindHobby} {
		r.Route("/api/"+string(kind), func(kr chi.Router) {
			kr.Get("/", listHandler(svc, kind, log))
			kr.Get("/{entryID}", getHandler(svc, kind, log))
		})
	}
}

type breedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type countryResponse struct {
	ID      string `json:"id"`
	Country string `json:"country"`
}

type hobbyResponse struct {
	ID        string `json:"id"`
	NameHobby string `json:"name_hobby"`
}

// listHandler godoc
// @Summary  List catalog entries (breeds, countries or hobbies)
// @Tags     catalog
// @Produce  json
// @Success  200 {array} breedResponse
// @Router   /api/breed/ [get]
// @Router   /api/country/ [get]
// @Router   /api/hobby/ [get]
func listHandler(svc *Service, kind Kind, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), kind)
		if err != nil {
			writeError(w, log, kind, err)
			return
		}

		out := make([]any, 0, len(items))
		for _, e := range items {
			out = append(out, toResponse(e))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getHandler godoc
// @Summary  Get a catalog entry
// @Tags     catalog
// @Produce  json
// @Param    id path string true "Entry ID"
// @Success  200 {object} breedResponse
// @Failure  404 {object} errs.HTTPError
// @Router   /api/breed/{id}/ [get]
func getHandler(svc *Service, kind Kind, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetByID(r.Context(), kind, chi.URLParam(r, "entryID"))
		if err != nil {
			writeError(w, log, kind, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toResponse(e))
	}
}

// createHandler godoc
// @Summary  Create a breed
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body body breedResponse true "Breed (id ignored)"
// @Success  201 {object} breedResponse
// @Failure  400 {object} errs.HTTPError
// @Failure  401 {object} errs.HTTPError
// @Failure  409 {object} errs.HTTPError
// @Router   /api/breed/ [post]
func createHandler(svc *Service, kind Kind, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CurrentUserID(r.Context()); !ok {
			errs.Write(w, errs.NewUnauthorized(""))
			return
		}

		raw, err := httpjson.DecodeRaw(r)
		if err != nil {
			errs.Write(w, err)
			return
		}

		var name string
		if v, ok := raw[kind.NameField()]; ok {
			if err := json.Unmarshal(v, &name); err != nil {
				errs.Write(w, validate.Field(kind.NameField(), "must be a string").HTTP())
				return
			}
		}

		e, err := svc.Create(r.Context(), kind, name)
		if err != nil {
			writeError(w, log, kind, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toResponse(e))
	}
}

func toResponse(e Entry) any {
	switch e.Kind {
	case KindCountry:
		return countryResponse{ID: e.ID, Country: e.Name}
	case KindHobby:
		return hobbyResponse{ID: e.ID, NameHobby: e.Name}
	default:
		return breedResponse{ID: e.ID, Name: e.Name}
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, kind Kind, err error) {
	var ve validate.Errors
	switch {
	case errors.As(err, &ve):
		errs.Write(w, ve.HTTP())
	case errors.Is(err, ErrNotFound):
		errs.Write(w, errs.NewNotFound(string(kind)+" not found"))
	case errors.Is(err, ErrConflict):
		errs.Write(w, errs.NewConflict(string(kind)+" with this name already exists"))
	case errors.Is(err, ErrInvalidInput):
		errs.Write(w, errs.NewBadRequest(err.Error()))
	default:
		log.Error("catalog request failed", map[string]any{"kind": kind, "err": err})
		errs.Write(w, errs.NewInternal())
	}
}

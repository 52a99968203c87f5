package owners

import (
	"errors"
	"net/http"
	"time"

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

	r.Route("/api/owner", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc, log))
		or.Post("/", createOwnerHandler(svc, log))

		// Cualquier usuario autenticado puede editar/borrar cualquier owner.
		or.Get("/{ownerID}", getOwnerHandler(svc, log))
		or.Put("/{ownerID}", replaceOwnerHandler(svc, log))
		or.Patch("/{ownerID}", patchOwnerHandler(svc, log))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc, log))
	})
}

type patchOwnerRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
}

type ownerResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// listOwnersHandler godoc
// @Summary  List all owners
// @Tags     owners
// @Produce  json
// @Success  200 {array} ownerResponse
// @Router   /api/owner/ [get]
func listOwnersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// createOwnerHandler godoc
// @Summary  Create an owner for the current user
// @Tags     owners
// @Accept   json
// @Produce  json
// @Param    body body Input true "Owner"
// @Success  201 {object} ownerResponse
// @Failure  400 {object} errs.HTTPError
// @Failure  401 {object} errs.HTTPError
// @Router   /api/owner/ [post]
func createOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.CurrentUserID(r.Context())
		if !ok {
			errs.Write(w, errs.NewUnauthorized(""))
			return
		}

		var req Input
		if err := httpjson.Decode(r, &req); err != nil {
			errs.Write(w, err)
			return
		}

		o, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// getOwnerHandler godoc
// @Summary  Get an owner
// @Tags     owners
// @Produce  json
// @Param    id path string true "Owner ID"
// @Success  200 {object} ownerResponse
// @Failure  404 {object} errs.HTTPError
// @Router   /api/owner/{id}/ [get]
func getOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toOwnerResponse(o))
	}
}

// replaceOwnerHandler godoc
// @Summary  Replace an owner
// @Tags     owners
// @Accept   json
// @Produce  json
// @Param    id   path string true "Owner ID"
// @Param    body body Input  true "Owner"
// @Success  200 {object} ownerResponse
// @Failure  400 {object} errs.HTTPError
// @Failure  401 {object} errs.HTTPError
// @Failure  404 {object} errs.HTTPError
// @Router   /api/owner/{id}/ [put]
func replaceOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CurrentUserID(r.Context()); !ok {
			errs.Write(w, errs.NewUnauthorized(""))
			return
		}

		var req Input
		if err := httpjson.Decode(r, &req); err != nil {
			errs.Write(w, err)
			return
		}

		o, err := svc.Replace(r.Context(), chi.URLParam(r, "ownerID"), req)
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toOwnerResponse(o))
	}
}

// patchOwnerHandler godoc
// @Summary  Partially update an owner
// @Tags     owners
// @Accept   json
// @Produce  json
// @Param    id   path string            true "Owner ID"
// @Param    body body patchOwnerRequest true "Fields to change"
// @Success  200 {object} ownerResponse
// @Router   /api/owner/{id}/ [patch]
func patchOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CurrentUserID(r.Context()); !ok {
			errs.Write(w, errs.NewUnauthorized(""))
			return
		}

		var req patchOwnerRequest
		if err := httpjson.Decode(r, &req); err != nil {
			errs.Write(w, err)
			return
		}

		o, err := svc.Patch(r.Context(), chi.URLParam(r, "ownerID"), PatchInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: req.PhoneNumber,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toOwnerResponse(o))
	}
}

// deleteOwnerHandler godoc
// @Summary  Delete an owner and its dogs
// @Tags     owners
// @Param    id path string true "Owner ID"
// @Success  204
// @Failure  401 {object} errs.HTTPError
// @Failure  404 {object} errs.HTTPError
// @Router   /api/owner/{id}/ [delete]
func deleteOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CurrentUserID(r.Context()); !ok {
			errs.Write(w, errs.NewUnauthorized(""))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "ownerID")); err != nil {
			writeError(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:          o.ID,
		FirstName:   o.FirstName,
		LastName:    o.LastName,
		PhoneNumber: o.PhoneNumber,
		User:        o.UserID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var ve validate.Errors
	switch {
	case errors.As(err, &ve):
		errs.Write(w, ve.HTTP())
	case errors.Is(err, ErrNotFound):
		errs.Write(w, errs.NewNotFound("owner not found"))
	case errors.Is(err, ErrInvalidInput):
		errs.Write(w, errs.NewBadRequest(err.Error()))
	default:
		log.Error("owner request failed", map[string]any{"err": err})
		errs.Write(w, errs.NewInternal())
	}
}

package dogs

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

	r.Route("/api/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc, log))
		dr.Post("/", createDogHandler(svc, log))

		// Sin chequeo de propiedad: basta con estar autenticado.
		dr.Get("/{dogID}", getDogHandler(svc, log))
		dr.Put("/{dogID}", replaceDogHandler(svc, log))
		dr.Patch("/{dogID}", patchDogHandler(svc, log))
		dr.Delete("/{dogID}", deleteDogHandler(svc, log))
	})
}

type patchDogRequest struct {
	Name    *string `json:"name"`
	Breed   *string `json:"breed"`
	Owner   *string `json:"owner"`
	Country *string `json:"country"`
	Hobby   *string `json:"hobby"`
}

type dogResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Owner     string    `json:"owner"`
	Country   string    `json:"country"`
	Hobby     string    `json:"hobby"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// listDogsHandler godoc
// @Summary  List all dogs
// @Tags     dogs
// @Produce  json
// @Success  200 {array} dogResponse
// @Router   /api/dogs/ [get]
func listDogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// createDogHandler godoc
// @Summary  Create a dog
// @Tags     dogs
// @Accept   json
// @Produce  json
// @Param    body body Input true "Dog"
// @Success  201 {object} dogResponse
// @Failure  400 {object} errs.HTTPError
// @Failure  401 {object} errs.HTTPError
// @Router   /api/dogs/ [post]
func createDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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

		d, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toDogResponse(d))
	}
}

// getDogHandler godoc
// @Summary  Get a dog
// @Tags     dogs
// @Produce  json
// @Param    id path string true "Dog ID"
// @Success  200 {object} dogResponse
// @Failure  404 {object} errs.HTTPError
// @Router   /api/dogs/{id}/ [get]
func getDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toDogResponse(d))
	}
}

// replaceDogHandler godoc
// @Summary  Replace a dog
// @Tags     dogs
// @Accept   json
// @Produce  json
// @Param    id   path string true "Dog ID"
// @Param    body body Input  true "Dog"
// @Success  200 {object} dogResponse
// @Failure  400 {object} errs.HTTPError
// @Failure  401 {object} errs.HTTPError
// @Failure  404 {object} errs.HTTPError
// @Router   /api/dogs/{id}/ [put]
func replaceDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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

		d, err := svc.Replace(r.Context(), chi.URLParam(r, "dogID"), req)
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toDogResponse(d))
	}
}

// patchDogHandler godoc
// @Summary  Partially update a dog
// @Tags     dogs
// @Accept   json
// @Produce  json
// @Param    id   path string          true "Dog ID"
// @Param    body body patchDogRequest true "Fields to change"
// @Success  200 {object} dogResponse
// @Router   /api/dogs/{id}/ [patch]
func patchDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CurrentUserID(r.Context()); !ok {
			errs.Write(w, errs.NewUnauthorized(""))
			return
		}

		var req patchDogRequest
		if err := httpjson.Decode(r, &req); err != nil {
			errs.Write(w, err)
			return
		}

		d, err := svc.Patch(r.Context(), chi.URLParam(r, "dogID"), PatchInput{
			Name:    req.Name,
			Breed:   req.Breed,
			Owner:   req.Owner,
			Country: req.Country,
			Hobby:   req.Hobby,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toDogResponse(d))
	}
}

// deleteDogHandler godoc
// @Summary  Delete a dog
// @Tags     dogs
// @Param    id path string true "Dog ID"
// @Success  204
// @Failure  401 {object} errs.HTTPError
// @Failure  404 {object} errs.HTTPError
// @Router   /api/dogs/{id}/ [delete]
func deleteDogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CurrentUserID(r.Context()); !ok {
			errs.Write(w, errs.NewUnauthorized(""))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "dogID")); err != nil {
			writeError(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:        d.ID,
		Name:      d.Name,
		Breed:     d.BreedID,
		Owner:     d.OwnerID,
		Country:   d.CountryID,
		Hobby:     d.HobbyID,
		User:      d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var ve validate.Errors
	switch {
	case errors.As(err, &ve):
		errs.Write(w, ve.HTTP())
	case errors.Is(err, ErrInvalidReference):
		// carrera con un borrado: la FK del store lo rechazó
		errs.Write(w, errs.NewBadRequest("referenced record does not exist"))
	case errors.Is(err, ErrNotFound):
		errs.Write(w, errs.NewNotFound("dog not found"))
	case errors.Is(err, ErrInvalidInput):
		errs.Write(w, errs.NewBadRequest(err.Error()))
	default:
		log.Error("dog request failed", map[string]any{"err": err})
		errs.Write(w, errs.NewInternal())
	}
}

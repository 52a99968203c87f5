package users

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

	r.Route("/api/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, log))
		ar.Post("/login", loginHandler(svc, log))
		ar.Get("/me", meHandler(svc, log))
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// registerHandler godoc
// @Summary  Register a user
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body RegisterInput true "Credentials"
// @Success  201 {object} userResponse
// @Failure  400 {object} errs.HTTPError
// @Failure  409 {object} errs.HTTPError
// @Router   /api/auth/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterInput
		if err := httpjson.Decode(r, &req); err != nil {
			errs.Write(w, err)
			return
		}

		u, err := svc.Register(r.Context(), req)
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toUserResponse(u))
	}
}

// loginHandler godoc
// @Summary  Exchange credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body loginRequest true "Credentials"
// @Success  200 {object} loginResponse
// @Failure  401 {object} errs.HTTPError
// @Failure  503 {object} errs.HTTPError
// @Router   /api/auth/login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpjson.Decode(r, &req); err != nil {
			errs.Write(w, err)
			return
		}

		tok, u, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, log, err)
			return
		}

		httpjson.Write(w, http.StatusOK, loginResponse{
			Token:     tok.Value,
			TokenType: "Bearer",
			ExpiresAt: tok.ExpiresAt,
			User:      toUserResponse(u),
		})
	}
}

// meHandler godoc
// @Summary  Current user
// @Tags     auth
// @Produce  json
// @Success  200 {object} userResponse
// @Failure  401 {object} errs.HTTPError
// @Router   /api/auth/me [get]
func meHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.CurrentUserID(r.Context())
		if !ok {
			errs.Write(w, errs.NewUnauthorized(""))
			return
		}

		u, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var ve validate.Errors
	switch {
	case errors.As(err, &ve):
		errs.Write(w, ve.HTTP())
	case errors.Is(err, ErrConflict):
		errs.Write(w, errs.NewConflict(err.Error()))
	case errors.Is(err, ErrInvalidCredentials):
		errs.Write(w, errs.NewUnauthorized(err.Error()))
	case errors.Is(err, ErrNotFound):
		errs.Write(w, errs.NewNotFound("user not found"))
	case errors.Is(err, ErrTokensDisabled):
		errs.Write(w, errs.NewServiceUnavailable(err.Error()))
	default:
		log.Error("auth request failed", map[string]any{"err": err})
		errs.Write(w, errs.NewInternal())
	}
}

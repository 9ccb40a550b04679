package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/transport"
	"github.com/anshumat/payroll-management/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Login(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err)

		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var dto SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Signup(dto)
	if err != nil {
		h.Logger.Error("signup failed", "error", err, "email", dto.Email)

		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, resp)
}

// AuthMiddleware authenticates every protected request. The token alone
// carries the principal, so no user lookup happens here.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.Logger.Warn("auth middleware: missing authorization token", "path", r.URL.Path)
			h.WriteError(w, http.StatusUnauthorized, internal.ErrNoToken.Message)
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("auth middleware: token validation failed", "error", err, "path", r.URL.Path)
			h.WriteError(w, http.StatusUnauthorized, internal.ErrInvalidToken.Message)
			return
		}

		principal, err := claims.Principal()
		if err != nil {
			h.Logger.Warn("auth middleware: malformed claims", "error", err)
			h.WriteError(w, http.StatusUnauthorized, internal.ErrInvalidToken.Message)
			return
		}

		ctx := internal.ContextWithPrincipal(r.Context(), principal)
		ctx = internal.ContextWithUserID(ctx, claims.UserID)
		ctx = logger.With(ctx, "userID", claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

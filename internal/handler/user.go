package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/FarzanehSa/LightBnB/internal/errs"
	"github.com/FarzanehSa/LightBnB/internal/middleware"
	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/FarzanehSa/LightBnB/internal/server"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	Register(ctx context.Context, p *model.RegisterUserPayload) (*model.Session, error)
	Login(ctx context.Context, p *model.LoginPayload) (*model.Session, error)
	Me(ctx context.Context, userID int64) (*model.User, error)
}

type UserHandler struct {
	Handler
	users UserService
}

func NewUserHandler(s *server.Server, users UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) Register(c echo.Context, p *model.RegisterUserPayload) (*model.Session, error) {
	session, err := h.users.Register(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	h.setSessionCookie(c, session.Token, time.Unix(session.ExpiresAt, 0))
	return session, nil
}

func (h *UserHandler) Login(c echo.Context, p *model.LoginPayload) (*model.Session, error) {
	session, err := h.users.Login(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	h.setSessionCookie(c, session.Token, time.Unix(session.ExpiresAt, 0))
	return session, nil
}

// Logout clears the session cookie. Tokens are stateless, so a bearer
// token stays valid until it expires.
func (h *UserHandler) Logout(c echo.Context, _ *model.Empty) error {
	h.setSessionCookie(c, "", time.Unix(0, 0))
	return nil
}

func (h *UserHandler) Me(c echo.Context, _ *model.Empty) (*model.User, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}
	return h.users.Me(c.Request().Context(), userID)
}

func (h *UserHandler) setSessionCookie(c echo.Context, token string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.server.Config.Primary.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	c.SetCookie(cookie)
}

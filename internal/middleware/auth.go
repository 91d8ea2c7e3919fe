package middleware

import (
	"strings"

	"github.com/FarzanehSa/LightBnB/internal/errs"
	"github.com/FarzanehSa/LightBnB/internal/server"
	"github.com/labstack/echo/v4"
)

// SessionCookie carries the session token for browser clients.
const SessionCookie = "session"

// TokenParser verifies a session token and returns its user id.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

type AuthMiddleware struct {
	server *server.Server
	tokens TokenParser
}

func NewAuthMiddleware(s *server.Server, tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		tokens: tokens,
	}
}

// RequireAuth rejects requests without a valid session. The token is read
// from the Authorization bearer header first, then the session cookie.
// On success the user id is stored under UserIDKey and added to the
// request logger.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c)
		if token == "" {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		userID, err := auth.tokens.ParseToken(token)
		if err != nil {
			GetLogger(c).Warn().Err(err).Msg("rejected session token")
			return errs.NewUnauthorizedError("Your session is invalid or has expired", true)
		}

		c.Set(UserIDKey, userID)

		l := GetLogger(c).With().Int64("user_id", userID).Logger()
		setLogger(c, &l)

		return next(c)
	}
}

func sessionToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

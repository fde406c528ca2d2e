package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "classteacher/internal/delivery/context"
	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/domain/repository"
	"classteacher/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves the bearer token on incoming requests into a user
// identity. Resolution is lenient about the header shape: a request that does
// not present a well-formed bearer credential simply proceeds without an
// identity, and only the route guards decide whether that is acceptable. A
// request that does present one must check out completely.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// Authenticate inspects the Authorization header. Missing header, a segment
// count other than two, or a scheme other than "bearer" (case-insensitive)
// pass through unauthenticated. A well-formed bearer token is verified and
// resolved to an active user, or the request fails with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		segments := strings.Fields(authHeader)
		if len(segments) != 2 || !strings.EqualFold(segments[0], "Bearer") {
			return next(c)
		}

		userID, err := m.tokenSvc.Verify(segments[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrTokenInvalid
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				// Fail closed on storage trouble rather than letting the
				// request through without an identity check.
				m.logger.Error("User lookup failed during authentication", slog.Any("userID", userID), slog.Any("error", err))
			}

			return domainerrors.ErrNoUserForToken
		}

		if !user.IsActive {
			return domainerrors.ErrUserDeactivated
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireAuth guards routes that need an authenticated user. It must run
// after Authenticate.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetUser(c) == nil {
			return domainerrors.ErrAuthenticationRequired
		}

		return next(c)
	}
}

// RequireStaff guards administrative routes. It must run after Authenticate.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := deliverycontext.GetUser(c)
		if user == nil {
			return domainerrors.ErrAuthenticationRequired
		}
		if !user.IsStaff {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

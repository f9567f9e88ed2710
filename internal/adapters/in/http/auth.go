package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"workorders/internal/core/domain/model/identity"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type callerKey struct{}

// WithCaller stores the authenticated caller in ctx.
func WithCaller(ctx context.Context, caller identity.Identity) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the caller attached by the auth middleware.
func CallerFromContext(ctx context.Context) (identity.Identity, bool) {
	caller, ok := ctx.Value(callerKey{}).(identity.Identity)
	return caller, ok
}

// claims mirrors the token issued by the login service.
type claims struct {
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator validates HS256 bearer tokens and turns them into caller
// identities.
type Authenticator struct {
	secret []byte
	now    func() time.Time
}

func NewAuthenticator(secret string) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &Authenticator{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for the given account. It is used by the CLI to mint
// tokens for local testing.
func (a *Authenticator) Issue(role identity.Role, name, username string, ttl time.Duration) (string, error) {
	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role:     string(role),
		Name:     name,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(a.secret)
}

// Parse validates tokenStr and returns the identity it carries.
func (a *Authenticator) Parse(tokenStr string) (identity.Identity, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return identity.Identity{}, errors.Join(ErrInvalidToken, err)
	}

	c, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid {
		return identity.Identity{}, ErrInvalidToken
	}

	role, err := identity.ParseRole(c.Role)
	if err != nil {
		return identity.Identity{}, errors.Join(ErrInvalidToken, err)
	}
	caller, err := identity.NewIdentity(role, c.Name, c.Username)
	if err != nil {
		return identity.Identity{}, errors.Join(ErrInvalidToken, err)
	}

	return caller, nil
}

// Middleware rejects requests without a valid bearer token with 401 and
// attaches the caller to the request context otherwise.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: err.Error()})
			}

			caller, err := a.Parse(tokenStr)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: ErrInvalidToken.Error()})
			}

			req := c.Request()
			c.SetRequest(req.WithContext(WithCaller(req.Context(), caller)))
			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

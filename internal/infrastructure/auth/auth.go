package auth

import (
	"context"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"jan-server/services/application-settings-api/internal/config"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver/responses"
	"jan-server/services/application-settings-api/internal/utils/platformerrors"
)

// TokenContextKey is the gin context key holding the validated token.
const TokenContextKey = "auth_token"

const (
	errUUIDMissingToken = "6b0e2a4d-93c1-4f7e-8a25-1d9c3e7f5b42"
	errUUIDInvalidToken = "e3f7c1a9-2b8d-4d60-b5e4-7a0c9f2d1e38"
)

// Validator validates JWTs using JWKS.
type Validator struct {
	cfg     *config.Config
	log     zerolog.Logger
	keyfunc jwt.Keyfunc
}

// NewValidator initializes JWKS fetching when auth is enabled.
func NewValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Validator, error) {
	log = log.With().Str("component", "auth").Logger()
	if !cfg.AuthEnabled {
		return &Validator{cfg: cfg, log: log}, nil
	}

	options := keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.Error().Err(err).Msg("jwks refresh error")
		},
	}

	jwks, err := keyfunc.Get(cfg.AuthJWKSURL, options)
	if err != nil {
		return nil, err
	}

	return &Validator{
		cfg:     cfg,
		log:     log,
		keyfunc: jwks.Keyfunc,
	}, nil
}

// Enabled reports whether requests must carry a bearer token.
func (v *Validator) Enabled() bool {
	return v != nil && v.cfg.AuthEnabled
}

// Middleware enforces JWT auth when enabled.
func (v *Validator) Middleware() gin.HandlerFunc {
	if !v.Enabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			abortUnauthorized(c, "missing bearer token", nil, errUUIDMissingToken)
			return
		}

		token, err := jwt.Parse(tokenString, v.keyfunc,
			jwt.WithAudience(v.cfg.Account),
			jwt.WithIssuer(v.cfg.AuthIssuer),
			jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		)
		if err != nil || !token.Valid {
			v.log.Debug().Err(err).Msg("rejecting token")
			abortUnauthorized(c, "invalid token", err, errUUIDInvalidToken)
			return
		}

		c.Set(TokenContextKey, token)
		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, message string, cause error, uuid string) {
	err := platformerrors.NewError(c.Request.Context(), platformerrors.LayerMiddleware, platformerrors.ErrorTypeUnauthorized, message, cause, uuid)
	responses.HandleError(c, err, message)
}

package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"domainsuggest/internal/config"
	"domainsuggest/pkg/domain"
	"domainsuggest/pkg/logger"
	"domainsuggest/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type userIDKey struct{}

// UserIDKey is the context key of the authenticated user's domain.UserID.
var UserIDKey = userIDKey{} //nolint: gochecknoglobals

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates RS256 bearer tokens whose subject is a user ID.
type SecHandler struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, fmt.Errorf("jwt public key is not configured")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the user ID.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	claims := jwt.RegisteredClaims{}
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(userID))
	ctx = logger.WithFields(ctx, zap.String("userID", userID.String()))

	return ctx, nil
}

// UserIDFromContext returns the authenticated user, if any.
func UserIDFromContext(ctx context.Context) (domain.UserID, bool) {
	userID, ok := ctx.Value(UserIDKey).(domain.UserID)

	return userID, ok
}

// GetUserIDFromContext returns the authenticated user or an unauthorized error.
func GetUserIDFromContext(ctx context.Context) (domain.UserID, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	return userID, nil
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(header[len("Bearer "):])

	return token, token != ""
}

// authenticate runs next with the caller's user ID in the request context.
// Without a token the request fails when required is set and passes through
// anonymously otherwise. A token that is present but invalid always fails.
func (h Handler) authenticate(sec *SecHandler, required bool, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			if required {
				h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}
			next(w, r)

			return
		}

		ctx, err := sec.HandleBearerAuth(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		next(w, r.WithContext(ctx))
	}
}

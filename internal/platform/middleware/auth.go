package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"chronicle/internal/changelog"
)

// editorClaims are the token claims the platform issues; uid and name
// identify the editor attributed to any change made on this request.
type editorClaims struct {
	UserID string `json:"uid"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Validator verifies bearer tokens and extracts the editor.
type Validator struct {
	signingKey []byte
}

func NewValidator(signingKey string) *Validator {
	return &Validator{signingKey: []byte(signingKey)}
}

func (v *Validator) editor(tokenString string) (changelog.Editor, error) {
	var claims editorClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.signingKey, nil
	})
	if err != nil {
		return changelog.Editor{}, err
	}
	if !token.Valid || claims.UserID == "" {
		return changelog.Editor{}, fmt.Errorf("invalid token")
	}
	return changelog.Editor{ID: claims.UserID, Name: claims.Name}, nil
}

type editorKey struct{}

// GetEditor retrieves the authenticated editor from the context. A zero
// editor means the request was not authenticated.
func GetEditor(ctx context.Context) changelog.Editor {
	editor, _ := ctx.Value(editorKey{}).(changelog.Editor)
	return editor
}

// WithEditor injects an editor directly; used by tests.
func WithEditor(ctx context.Context, editor changelog.Editor) context.Context {
	return context.WithValue(ctx, editorKey{}, editor)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved editor in the request context.
func RequireAuth(validator *Validator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}
			editor, err := validator.editor(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithEditor(ctx, editor)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error":"unauthorized","error_description":%q}`, description)
}

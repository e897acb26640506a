package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"veripay/internal/auth"
	"veripay/internal/compliance/models"
	id "veripay/pkg/domain"
)

// TokenValidator validates seller access tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

type contextKeySellerContext struct{}

// ContextKeySellerContext is exported for tests that build contexts directly.
var ContextKeySellerContext = contextKeySellerContext{}

// GetSellerContext retrieves the authenticated seller's compliance context.
func GetSellerContext(ctx context.Context) (models.SellerContext, bool) {
	sctx, ok := ctx.Value(ContextKeySellerContext).(models.SellerContext)
	return sctx, ok
}

// WithSellerContext injects a seller context, bypassing token validation.
// Test helper.
func WithSellerContext(ctx context.Context, sctx models.SellerContext) context.Context {
	return context.WithValue(ctx, ContextKeySellerContext, sctx)
}

// RequireSeller rejects requests without a valid bearer token and places the
// seller's compliance context on the request context.
func RequireSeller(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized: missing bearer token",
					"request_id", GetRequestID(ctx))
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized: invalid token",
					"error", err, "request_id", GetRequestID(ctx))
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			sellerID, err := id.ParseSellerID(claims.SellerID)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized: malformed seller claim",
					"error", err, "request_id", GetRequestID(ctx))
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			sctx := models.SellerContext{
				SellerID:    sellerID,
				AccountID:   claims.AccountID,
				CountryCode: claims.Country,
				EntityType:  models.EntityType(claims.EntityType),
			}
			next.ServeHTTP(w, r.WithContext(WithSellerContext(ctx, sctx)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}

// File: internal/middleware/identity.go
package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
)

// RequireUser resolves the caller's identity from the X-User-ID header set
// by the fronting auth gateway. Authentication itself happens upstream; by
// the time a request reaches this service the header is trusted.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		userID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || userID == 0 {
			log.Printf("[IdentityMiddleware] Missing or invalid X-User-ID header for path %s", r.URL.Path)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, uint(userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFrom extracts the authenticated user ID placed by RequireUser.
func UserIDFrom(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok && userID != 0
}

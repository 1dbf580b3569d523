package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// IdentityHeader carries the authenticated user's ID, set by the edge proxy
// after it has verified the session.
const IdentityHeader = "X-User-ID"

// Identity attaches the proxy-asserted user ID to the request context.
// Requests without the header pass through anonymous; services reject them
// with ErrUnauthorized where identity is required. A malformed header is a
// client error, not an anonymous request.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(IdentityHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			http.Error(w, "invalid user id", http.StatusUnauthorized)
			return
		}
		ctx := ctxutil.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Package owner resolves the acting user for API requests.
//
// Authentication proper is out of scope; the API trusts whatever gateway
// sits in front of it and reads the user id from a header.
package owner

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const Header = "X-User-ID"

type contextKey struct{}

// Require rejects requests without a valid X-User-ID header and puts the
// parsed id on the request context.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(Header))
		if err != nil || id == uuid.Nil {
			http.Error(w, "missing or invalid "+Header+" header", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), contextKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the id stored by Require. It panics if the middleware
// did not run, which is a routing bug.
func FromContext(ctx context.Context) uuid.UUID {
	return ctx.Value(contextKey{}).(uuid.UUID)
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AbhradeepMukherjee/CalenderApp/internal/auth"
)

type ctxKey string

const subjectKey ctxKey = "uid"

// Subject returns the verified external identity key stored by Auth, or ""
// when the request never passed through it.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}

// Auth rejects requests without a valid bearer token before any business
// logic runs.
func Auth(v auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// token from Authorization: Bearer <jwt>
			raw := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer"))
			if raw == "" {
				unauthorized(w)
				return
			}

			uid, err := v.Verify(raw)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
}

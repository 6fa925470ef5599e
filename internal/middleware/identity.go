package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const (
	actorIDKey ctxKey = "actor_id"
	isAdminKey ctxKey = "is_admin"
)

// Identity extracts the authenticated principal from the headers set by the
// upstream auth gateway: X-User-ID carries the actor's id, X-User-Role is
// "admin" for administrators. Requests without a valid actor id are rejected;
// this service never sees credentials, only the resolved identity.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID, err := uuid.Parse(r.Header.Get("X-User-ID"))
		if err != nil {
			http.Error(w, "missing or invalid X-User-ID", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), actorIDKey, actorID)
		ctx = context.WithValue(ctx, isAdminKey, r.Header.Get("X-User-Role") == "admin")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorID returns the authenticated actor, or uuid.Nil outside Identity.
func ActorID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(actorIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(isAdminKey).(bool)
	return admin
}

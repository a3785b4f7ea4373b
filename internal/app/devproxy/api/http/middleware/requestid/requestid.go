package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const Header = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "requestID"

// Middleware выставляет X-Request-ID, если клиент его не прислал.
// Заголовок уходит в backend и возвращается клиенту.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		r = r.Clone(ctx)
		r.Header.Set(Header, id)
		w.Header().Set(Header, id)

		next.ServeHTTP(w, r)
	})
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

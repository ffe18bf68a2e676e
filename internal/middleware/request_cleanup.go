package middleware

import (
	"io"
	"net/http"
)

// DrainAndCloseRequest reads whatever is left of the request body and
// closes it once the handler chain is done, so keep-alive connections
// stay reusable. Handlers that bail out early (rate limited or bad
// content type) never touch the body at all.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}

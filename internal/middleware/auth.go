package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"
	"github.com/dstevanovic/fitrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// AuthMiddlewareHandler guards the mutating routes with the mobile
// app secret. There is no user account concept, a single shared
// device secret is all the FitRack app sends.
type AuthMiddlewareHandler struct {
	appSecret            string
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(appSecret string) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		appSecret: appSecret,
		allowedPaths: map[string]bool{
			// read-only surface used by the app's dashboard
			"/":             true,
			"/version":      true,
			"/exercises":    true,
			"/completions":  true,
			"/history":      true,
			"/history/week": true,
			"/streak":       true,
			"/stats":        true,
		},
		allowedPathsPrefixes: []string{
			"/events/list/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	if h.allowedPaths[r.URL.Path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get("X-FITRACK-TOKEN")
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(authToken), []byte(h.appSecret)) != 1 {
				reqIp, _ := pkg.ReadUserIP(r)
				log.Errorf("unauthorized %s request detected from %s", r.URL.Path, reqIp)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

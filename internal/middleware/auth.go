package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

// AuthMiddlewareHandler guards mutating routes with a bearer API token, checked against a bcrypt hash.
type AuthMiddlewareHandler struct {
	tokenHash string

	// bcrypt is slow on purpose, tokens that passed once are not hashed again
	verifiedMu sync.RWMutex
	verified   map[string]bool

	CheckHashFunc func(token, hash string) bool
}

func NewAuthMiddlewareHandler(tokenHash string) *AuthMiddlewareHandler {
	if tokenHash == "" {
		log.Warnln("API token hash not set, mutating routes are not protected")
	}
	return &AuthMiddlewareHandler{
		tokenHash:     tokenHash,
		verified:      make(map[string]bool),
		CheckHashFunc: pkg.CheckPasswordHash,
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if h.tokenHash == "" || !isMutating(r.Method) || strings.HasPrefix(r.URL.Path, "/mcp") {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !h.isValid(token) {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

func (h *AuthMiddlewareHandler) isValid(token string) bool {
	h.verifiedMu.RLock()
	ok := h.verified[token]
	h.verifiedMu.RUnlock()
	if ok {
		return true
	}

	if !h.CheckHashFunc(token, h.tokenHash) {
		return false
	}

	h.verifiedMu.Lock()
	h.verified[token] = true
	h.verifiedMu.Unlock()
	return true
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

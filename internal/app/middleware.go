package app

import (
	"errors"
	"net/http"

	"github.com/eventsync/eventsync/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies) {

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			log.Tracef("%s %s", req.Method, req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})

	// Resolve the X-User-Id header (email) into a full user record with
	// derived permissions for downstream services. Authentication itself
	// happens upstream; this service only consumes the resolved identity.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			email := req.Header.Get("X-User-Id")
			ctx := req.Context()

			if email != "" {
				u, err := deps.UserService.GetUserByEmail(ctx, email)
				if err != nil {
					if errors.Is(err, user.ErrUserNotFound) {
						log.Debugf("user not found: %s", email)
						http.Error(w, "user not found", http.StatusForbidden)
						return
					}
					log.Errorf("failed to resolve user: %v", err)
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				ctx = user.WithUser(ctx, u)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sushihentaime/bloglist/internal/auth"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			ip     = r.RemoteAddr
			method = r.Method
			proto  = r.Proto
			uri    = r.URL.RequestURI()
		)

		app.logger.Info("request from", slog.String("method", method), slog.String("uri", uri), slog.String("remote_addr", ip), slog.String("proto", proto))

		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the bearer token, if any, into a verified identity
// on the request context. A request without a bearer token passes through
// anonymously; handlers that need an identity reject it downstream. A
// token that fails verification, or whose identity claim no longer
// resolves to an existing user, ends the request here.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Authorization")

		token, found := auth.ExtractBearer(r.Header.Get("Authorization"))
		if !found {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := app.tokens.Verify(token)
		if err != nil {
			app.errorResponse(w, r, err)
			return
		}

		_, err = app.userService.GetUserByID(r.Context(), identity.UserID)
		if err != nil {
			switch {
			case errors.Is(err, userservice.ErrNotFound):
				app.logger.Info("token for a missing user rejected", slog.String("username", identity.Username))
				app.invalidTokenResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}

		r = app.createIdentityContext(r, identity)
		next.ServeHTTP(w, r)
	})
}

func (app *application) requireAuthUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.getIdentityContext(r) == nil {
			app.invalidTokenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	}
}

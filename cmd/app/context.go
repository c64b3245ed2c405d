package main

import (
	"context"
	"net/http"

	"github.com/sushihentaime/bloglist/internal/auth"
)

type contextKey string

const identityContextKey = contextKey("identity")

func (app *application) createIdentityContext(r *http.Request, identity *auth.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityContextKey, identity)
	return r.WithContext(ctx)
}

// getIdentityContext returns the verified identity of the request, or nil
// for an anonymous request.
func (app *application) getIdentityContext(r *http.Request) *auth.Identity {
	identity, ok := r.Context().Value(identityContextKey).(*auth.Identity)
	if !ok {
		return nil
	}
	return identity
}

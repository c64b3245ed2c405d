package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sushihentaime/bloglist/internal/auth"
	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	err := app.writeJSON(w, status, envelope{"error": message}, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	message := "the server encountered a problem and could not process your request"
	app.writeErrorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) badRequestErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

// notFoundResponse replies 404 with an empty body, matching the contract
// for missing records. Unknown routes answer with a body instead, see
// unknownEndpointResponse.
func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

func (app *application) unknownEndpointResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, "unknown endpoint")
}

func (app *application) methodNotAllowedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (app *application) failedValidationErrorResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, errors)
}

func (app *application) invalidCredentialsErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "invalid username or password")
}

// invalidTokenResponse is the single client-facing reply for a missing,
// malformed, forged or expired token. The cause is distinguished in the
// logs only.
func (app *application) invalidTokenResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "token missing or invalid")
}

// noPermissionResponse rejects a mutation by a non-owner. The 401 status
// is a long-standing external contract of this API, kept over the more
// conventional 403.
func (app *application) noPermissionResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "no permission")
}

// errorResponse is the centralized error boundary: it maps error kinds,
// by category, onto the HTTP status table. Anything unrecognized is
// logged and answered with a generic 500.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr common.ValidationError

	switch {
	case errors.Is(err, errMalformedID):
		app.badRequestErrorResponse(w, r, err)

	case errors.As(err, &validationErr):
		app.failedValidationErrorResponse(w, r, validationErr.Errors)

	case errors.Is(err, userservice.ErrDuplicateUsername):
		app.failedValidationErrorResponse(w, r, map[string]string{"username": "this username is already taken"})

	case errors.Is(err, blogservice.ErrDuplicateTitle):
		app.failedValidationErrorResponse(w, r, map[string]string{"title": "this title is already taken"})

	case errors.Is(err, userservice.ErrNotFound), errors.Is(err, blogservice.ErrRecordNotFound):
		app.notFoundResponse(w, r)

	case errors.Is(err, userservice.ErrInvalidCredentials):
		app.invalidCredentialsErrorResponse(w, r)

	case errors.Is(err, auth.ErrExpiredToken):
		app.logger.Info("expired token rejected", slog.String("url", r.URL.RequestURI()))
		app.invalidTokenResponse(w, r)

	case errors.Is(err, auth.ErrInvalidToken):
		app.logger.Info("invalid token rejected", slog.String("url", r.URL.RequestURI()))
		app.invalidTokenResponse(w, r)

	case errors.Is(err, blogservice.ErrUserForeignKey):
		app.invalidTokenResponse(w, r)

	default:
		app.serverErrorResponse(w, r, err)
	}
}

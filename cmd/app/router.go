package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.unknownEndpointResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/api/health", app.healthCheckHandler)

	// users
	router.HandlerFunc(http.MethodGet, "/api/users", app.getAllUsersHandler)
	router.HandlerFunc(http.MethodGet, "/api/users/:id", app.getUserHandler)
	router.HandlerFunc(http.MethodPost, "/api/users", app.registerUserHandler)

	// login
	router.HandlerFunc(http.MethodPost, "/api/login", app.loginUserHandler)

	// blogs
	router.HandlerFunc(http.MethodGet, "/api/blogs", app.getAllBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/api/blogs/:id", app.getBlogHandler)
	router.HandlerFunc(http.MethodPost, "/api/blogs", app.requireAuthUser(app.createBlogHandler))
	router.HandlerFunc(http.MethodPut, "/api/blogs/:id", app.requireAuthUser(app.updateBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/api/blogs/:id", app.requireAuthUser(app.deleteBlogHandler))

	// aggregates
	router.HandlerFunc(http.MethodGet, "/api/stats", app.statsHandler)

	// bulk delete for end-to-end test isolation, never mounted outside the
	// test environment
	if app.config.Environment == "test" {
		router.HandlerFunc(http.MethodPost, "/api/testing/reset", app.resetHandler)
	}

	return app.recoverPanic(app.logRequest(app.authenticate(router)))
}

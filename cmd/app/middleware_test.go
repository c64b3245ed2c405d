package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/bloglist/internal/auth"
)

func TestRecoverPanic(t *testing.T) {
	app, _ := newTestApplication(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
}

func TestAuthenticate(t *testing.T) {
	app, db := newTestApplication(t)

	setup := func(db *sql.DB) (*string, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := app.userService.CreateUser(ctx, "testuser", "Test User", "", "Test_1234!")
		if err != nil {
			return nil, err
		}

		token, err := app.tokens.Issue(auth.Identity{UserID: user.ID, Username: user.Username})
		if err != nil {
			return nil, err
		}

		return &token, nil
	}

	// expiredToken signs a token with the real secret whose lifetime has
	// already elapsed.
	expiredToken := func(db *sql.DB) (*string, error) {
		claims := jwt.MapClaims{
			"username": "testuser",
			"id":       "c9a646d3-9c61-4cb7-bfcd-ee2522c8f633",
			"iat":      time.Now().Add(-2 * time.Hour).Unix(),
			"exp":      time.Now().Add(-time.Hour).Unix(),
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(app.config.Secret))
		if err != nil {
			return nil, err
		}

		return &token, nil
	}

	// deletedUserToken issues a token for a user that no longer exists.
	deletedUserToken := func(db *sql.DB) (*string, error) {
		token, err := setup(db)
		if err != nil {
			return nil, err
		}

		_, err = db.Exec("DELETE FROM users")
		if err != nil {
			return nil, err
		}

		return token, nil
	}

	tests := []struct {
		name           string
		authHeader     func(db *sql.DB) (*string, error)
		expectedStatus int
	}{
		{
			name:           "No Authentication Header",
			authHeader:     func(db *sql.DB) (*string, error) { return nil, nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Malformed Token",
			authHeader:     func(db *sql.DB) (*string, error) { return strptr("invalid-token"), nil },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired Token",
			authHeader:     expiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token For Deleted User",
			authHeader:     deletedUserToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Valid Token",
			authHeader:     setup,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			middleware := app.authenticate(handler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			token, err := tt.authHeader(db)
			assert.NoError(t, err)

			if token != nil {
				req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
			}

			res := httptest.NewRecorder()

			middleware.ServeHTTP(res, req)

			assert.Equal(t, tt.expectedStatus, res.Code)

			t.Cleanup(func() {
				_, err := db.Exec("DELETE FROM users")
				assert.NoError(t, err)
			})
		})
	}
}

func TestRequireAuthUser(t *testing.T) {
	app, _ := newTestApplication(t)

	handler := app.requireAuthUser(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Anonymous Request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Authenticated Request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = app.createIdentityContext(req, &auth.Identity{Username: "testuser"})
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
	})
}

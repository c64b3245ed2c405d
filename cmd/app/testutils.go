package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/bloglist/internal/auth"
	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/mailservice"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	rabbitURI := common.TestRabbitMQ(t)
	rabbitmq, err := common.NewMessageBroker(rabbitURI)
	assert.NoError(t, err)

	err = common.SetupUserExchange(rabbitmq)
	assert.NoError(t, err)

	cfg, err := loadConfig("../../.test.env")
	assert.NoError(t, err)

	tokens, err := auth.NewTokenAuthority(cfg.Secret)
	assert.NoError(t, err)

	app := &application{
		config:      cfg,
		logger:      logger,
		tokens:      tokens,
		userService: userservice.NewUserService(db, rabbitmq, logger),
		blogService: blogservice.NewBlogService(db),
		mailService: mailservice.NewMailService(rabbitmq, cfg.Mail.Host, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.Sender, cfg.Mail.Port, logger),
		broker:      rabbitmq,
	}

	return app, db
}

// readResponse drains the response body. A 204 or an empty-body 404 reads
// as a nil envelope; a top-level array is wrapped under the "list" key so
// every response fits the same return shape.
func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	if len(responseBody) == 0 {
		return res.StatusCode, res.Header, nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(responseBody), []byte("[")) {
		var list []any
		err = json.Unmarshal(responseBody, &list)
		if err != nil {
			t.Fatal(err)
		}

		return res.StatusCode, res.Header, envelope{"list": list}
	}

	var body envelope
	err = json.Unmarshal(responseBody, &body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, body
}

func (ts *testServer) do(t *testing.T, method, path string, payload any, token *string) (int, http.Header, envelope) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodGet, path, nil, token)
}

func (ts *testServer) post(t *testing.T, path string, payload any, token *string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPost, path, payload, token)
}

func (ts *testServer) put(t *testing.T, path string, payload any, token *string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPut, path, payload, token)
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodDelete, path, nil, token)
}

func strptr(s string) *string {
	return &s
}

package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/gadgetpress/internal/blogservice"
	"github.com/sushihentaime/gadgetpress/internal/common"
	"github.com/sushihentaime/gadgetpress/internal/mediahost"
	"github.com/sushihentaime/gadgetpress/internal/userservice"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "supersecret"
)

type mockMedia struct {
	mock.Mock
}

func (m *mockMedia) Upload(ctx context.Context, data []byte) (*mediahost.Asset, error) {
	args := m.Called(ctx, data)
	asset, _ := args.Get(0).(*mediahost.Asset)
	return asset, args.Error(1)
}

func (m *mockMedia) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func testConfig() *Config {
	return &Config{
		Port:          "0",
		Environment:   envDevelopment,
		Version:       "test",
		ClientURL:     "http://localhost:3000",
		JWTSecret:     "test-secret-test-secret-test-secret",
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
	}
}

// newBareApplication has no database behind it; it is enough for the
// middleware that never reaches a service.
func newBareApplication(t *testing.T) *application {
	t.Helper()

	return &application{
		config: testConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTestApplication(t *testing.T) (*application, *sql.DB, *mockMedia) {
	t.Helper()

	db := common.TestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	media := new(mockMedia)

	userService, err := userservice.NewUserService(db, userservice.AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	require.NoError(t, err)

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userService,
		blogService: blogservice.NewBlogService(db, common.NewCache(time.Minute, 10*time.Minute), media, logger),
		media:       media,
	}

	return app, db, media
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	t.Helper()
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var env envelope
	if len(responseBody) > 0 {
		err = json.Unmarshal(responseBody, &env)
		if err != nil {
			t.Fatalf("invalid JSON response %q: %v", responseBody, err)
		}
	}

	return res.StatusCode, res.Header, env
}

func (ts *testServer) do(t *testing.T, method, path, contentType string, body io.Reader, token *string) (int, http.Header, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) sendJSON(t *testing.T, method, path string, payload any, token *string) (int, http.Header, envelope) {
	t.Helper()

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	return ts.do(t, method, path, "application/json", bytes.NewReader(jsonPayload), token)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodGet, path, "", nil, token)
}

func (ts *testServer) post(t *testing.T, path string, payload any, token *string) (int, http.Header, envelope) {
	return ts.sendJSON(t, http.MethodPost, path, payload, token)
}

func (ts *testServer) put(t *testing.T, path string, payload any, token *string) (int, http.Header, envelope) {
	return ts.sendJSON(t, http.MethodPut, path, payload, token)
}

func (ts *testServer) patch(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodPatch, path, "", nil, token)
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	return ts.do(t, http.MethodDelete, path, "", nil, token)
}

// postMultipart sends fields as form values and image, when non-nil, as the
// image part.
func (ts *testServer) postMultipart(t *testing.T, method, path string, fields map[string]string, image []byte, token *string) (int, http.Header, envelope) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}

	if image != nil {
		part, err := mw.CreateFormFile(imageFormField, "upload.bin")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(image); err != nil {
			t.Fatal(err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	return ts.do(t, method, path, mw.FormDataContentType(), &body, token)
}

// adminToken bootstraps the admin account and logs in as it.
func (ts *testServer) adminToken(t *testing.T) *string {
	t.Helper()

	status, _, _ := ts.post(t, "/api/auth/create-admin", nil, nil)
	require.Contains(t, []int{http.StatusOK, http.StatusBadRequest}, status)

	status, _, body := ts.post(t, "/api/auth/login", map[string]string{"email": testAdminEmail, "password": testAdminPassword}, nil)
	require.Equal(t, http.StatusOK, status)

	token, ok := body["token"].(string)
	require.True(t, ok)

	return &token
}

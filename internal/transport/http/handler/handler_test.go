package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anhthuvo/mobileAppBE/internal/core/auth"
	"github.com/anhthuvo/mobileAppBE/internal/core/blob"
	"github.com/anhthuvo/mobileAppBE/internal/domain"
	"github.com/anhthuvo/mobileAppBE/internal/repo"
	"github.com/anhthuvo/mobileAppBE/internal/transport/http/handler"
	"github.com/anhthuvo/mobileAppBE/internal/transport/http/router"
)

type testServer struct {
	engine *gin.Engine
	jwter  *auth.JWTer
	users  *repo.UserRepo
}

// newTestServer wires the full route table against an in-memory SQLite
// database; no redis and no blob backend.
func newTestServer(t *testing.T) *testServer {
	return newTestServerBlob(t, nil)
}

func newTestServerBlob(t *testing.T, images blob.Store) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: 8 * time.Hour}
	log := zap.NewNop()
	userRepo := repo.NewUserRepo(db)
	productRepo := repo.NewProductRepo(db)

	engine := router.New(router.Deps{
		Log:     log,
		JWTer:   jwter,
		User:    handler.NewUserHandler(userRepo, jwter, log),
		Product: handler.NewProductHandler(productRepo, nil, time.Minute, log),
		Image:   handler.NewImageHandler(images, log),
	})
	return &testServer{engine: engine, jwter: jwter, users: userRepo}
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func (s *testServer) signup(t *testing.T, email, password, role string) string {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/api/v1/users/signup", "", gin.H{
		"firstname": "Test",
		"lastname":  "User",
		"email":     email,
		"password":  password,
		"phone":     "phone-" + email,
		"role":      role,
	})
	if w.Code != 201 {
		t.Fatalf("signup status = %d body %s", w.Code, w.Body.String())
	}
	var out struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	return out.UserID
}

func (s *testServer) login(t *testing.T, email, password string) (string, int) {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"email": email, "password": password,
	})
	if w.Code != 200 {
		return "", w.Code
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	return out.Token, w.Code
}

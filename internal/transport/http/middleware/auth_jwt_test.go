package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anhthuvo/mobileAppBE/internal/core/auth"
)

func newGateEngine(t *testing.T, j *auth.JWTer, requireRole string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthJWT(j, requireRole), func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			t.Error("gate passed but no claims attached")
		}
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID, "role": claims.Role})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthJWT_MissingToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "t", TTL: time.Hour}
	r := newGateEngine(t, j, "")

	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", w.Code)
	}

	// Wrong scheme is also a missing token.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("basic scheme: status = %d, want 401", w.Code)
	}
}

func TestAuthJWT_InvalidToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "t", TTL: time.Hour}
	r := newGateEngine(t, j, "")

	if w := doGet(r, "garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}

	other := &auth.JWTer{Secret: []byte("other"), Issuer: "t", TTL: time.Hour}
	tok, err := other.Issue("u1", "a@b.com", "USER")
	if err != nil {
		t.Fatal(err)
	}
	if w := doGet(r, tok); w.Code != http.StatusUnauthorized {
		t.Errorf("foreign signature: status = %d, want 401", w.Code)
	}
}

func TestAuthJWT_AttachesClaims(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "t", TTL: time.Hour}
	r := newGateEngine(t, j, "")

	tok, err := j.Issue("u1", "a@b.com", "USER")
	if err != nil {
		t.Fatal(err)
	}
	w := doGet(r, tok)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["userId"] != "u1" || body["role"] != "USER" {
		t.Errorf("claims = %v", body)
	}
}

func TestAuthJWT_AdminGate(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "t", TTL: time.Hour}
	r := newGateEngine(t, j, "ADMIN")

	userTok, err := j.Issue("u1", "user@b.com", "USER")
	if err != nil {
		t.Fatal(err)
	}
	if w := doGet(r, userTok); w.Code != http.StatusForbidden {
		t.Errorf("USER token through admin gate: status = %d, want 403", w.Code)
	}

	adminTok, err := j.Issue("u2", "admin@b.com", "ADMIN")
	if err != nil {
		t.Fatal(err)
	}
	if w := doGet(r, adminTok); w.Code != http.StatusOK {
		t.Errorf("ADMIN token through admin gate: status = %d, want 200", w.Code)
	}
}

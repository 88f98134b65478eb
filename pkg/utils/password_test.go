package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple", password: "password123"},
		{name: "symbols", password: "P@ssw0rd!#$%"},
		{name: "unicode", password: "mật-khẩu-123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}
			if hash == "" || hash == tt.password {
				t.Fatalf("HashPassword() = %q, must be a non-empty hash", hash)
			}
			if !CheckPassword(tt.password, hash) {
				t.Error("CheckPassword() rejected the correct password")
			}
			if CheckPassword("wrong-password", hash) {
				t.Error("CheckPassword() accepted a wrong password")
			}
		})
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Errorf("NewID() must produce distinct non-empty ids, got %q and %q", a, b)
	}
}

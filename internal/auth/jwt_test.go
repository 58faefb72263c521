package auth

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", time.Minute, Claims{UserID: "u-1", UserType: UserTypeAdmin})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := ParseToken("secret", "issuer", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u-1" || claims.Subject != "u-1" {
		t.Fatalf("unexpected subject: %+v", claims)
	}
	if !claims.CanWrite() {
		t.Fatalf("admin should be allowed to write")
	}
}

func TestParseTokenRejects(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", time.Minute, Claims{UserID: "u-1", UserType: "teacher"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken("other", "issuer", token); err == nil {
		t.Fatalf("expected signature error")
	}
	if _, err := ParseToken("secret", "someone-else", token); err == nil {
		t.Fatalf("expected issuer error")
	}
	if _, err := ParseToken("", "issuer", token); err == nil {
		t.Fatalf("expected error without secret")
	}

	expired, err := NewAccessToken("secret", "issuer", -time.Minute, Claims{UserID: "u-1"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken("secret", "issuer", expired); err == nil {
		t.Fatalf("expected expiry error")
	}

	claims, err := ParseToken("secret", "issuer", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.CanWrite() {
		t.Fatalf("teacher role should not write master data")
	}
}

package api

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	secret := []byte("jwt-secret")
	now := time.Now()

	token, expiresAt, err := issueAdminToken(secret, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !expiresAt.Equal(now.Add(adminTokenTTL)) {
		t.Errorf("expiresAt = %v", expiresAt)
	}

	subject, err := parseAdminToken(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if subject != adminSubject {
		t.Errorf("subject = %q", subject)
	}
}

func TestParseAdminTokenRejects(t *testing.T) {
	secret := []byte("jwt-secret")

	expired, _, _ := issueAdminToken(secret, time.Now().Add(-2*adminTokenTTL))
	if _, err := parseAdminToken(expired, secret); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expired token err = %v", err)
	}

	other, _, _ := issueAdminToken([]byte("other"), time.Now())
	if _, err := parseAdminToken(other, secret); err == nil {
		t.Error("token signed with another secret accepted")
	}

	wrongSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "visitor",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	if _, err := parseAdminToken(wrongSubject, secret); err == nil {
		t.Error("token for another subject accepted")
	}

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: adminSubject}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := parseAdminToken(none, secret); err == nil {
		t.Error("unsigned token accepted")
	}
}

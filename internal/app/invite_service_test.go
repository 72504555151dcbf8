package app

import (
	"strings"
	"testing"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

func TestInviteServiceRoundTrip(t *testing.T) {
	svc := NewInviteService("test-secret", "punto", time.Hour)

	token, err := svc.CreateInvite("match-123.nakama", "user-1")
	if err != nil {
		t.Fatalf("create invite error: %v", err)
	}

	invite, err := svc.ParseInvite(token)
	if err != nil {
		t.Fatalf("parse invite error: %v", err)
	}
	if invite.MatchID != "match-123.nakama" {
		t.Fatalf("match id = %s, want match-123.nakama", invite.MatchID)
	}
	if invite.InviterID != "user-1" {
		t.Fatalf("inviter = %s, want user-1", invite.InviterID)
	}
	if invite.ID == "" {
		t.Fatal("invite id should be set")
	}
	if time.Until(invite.ExpiresAt) <= 0 {
		t.Fatalf("invite already expired at %v", invite.ExpiresAt)
	}
}

func TestInviteServiceRejectsForeignSignature(t *testing.T) {
	token, err := NewInviteService("secret-a", "punto", time.Hour).CreateInvite("m1", "u1")
	if err != nil {
		t.Fatalf("create invite error: %v", err)
	}
	if _, err := NewInviteService("secret-b", "punto", time.Hour).ParseInvite(token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestInviteServiceRejectsTamperedToken(t *testing.T) {
	svc := NewInviteService("secret", "punto", time.Hour)
	token, err := svc.CreateInvite("m1", "u1")
	if err != nil {
		t.Fatalf("create invite error: %v", err)
	}
	parts := strings.Split(token, ".")
	parts[1] = parts[1] + "x"
	if _, err := svc.ParseInvite(strings.Join(parts, ".")); err == nil {
		t.Fatal("expected error for tampered payload")
	}
}

func TestInviteServiceRejectsExpiredToken(t *testing.T) {
	svc := NewInviteService("secret", "punto", -time.Minute)
	token, err := svc.CreateInvite("m1", "u1")
	if err != nil {
		t.Fatalf("create invite error: %v", err)
	}
	if _, err := svc.ParseInvite(token); err == nil {
		t.Fatal("expected error for expired invite")
	}
}

func TestInviteServiceRejectsOtherIssuer(t *testing.T) {
	token, err := NewInviteService("secret", "someone-else", time.Hour).CreateInvite("m1", "u1")
	if err != nil {
		t.Fatalf("create invite error: %v", err)
	}
	if _, err := NewInviteService("secret", "punto", time.Hour).ParseInvite(token); err == nil {
		t.Fatal("expected issuer error")
	}
}

func TestInviteServiceRequiresConfig(t *testing.T) {
	if _, err := NewInviteService("", "punto", time.Hour).CreateInvite("m1", "u1"); err == nil {
		t.Fatal("expected error for missing secret")
	}
	if _, err := NewInviteService("secret", "punto", time.Hour).CreateInvite("", "u1"); err == nil {
		t.Fatal("expected error for missing match id")
	}
}

func TestInviteServiceRejectsRawSecretSignature(t *testing.T) {
	claims := jwt.MapClaims{
		"iss": "punto",
		"sub": "u1",
		"mid": "m1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := NewInviteService("secret", "punto", time.Hour).ParseInvite(token); err == nil {
		t.Fatal("token signed with the raw secret should be rejected")
	}
}

func TestDeriveInviteKey(t *testing.T) {
	a := deriveInviteKey("secret")
	if len(a) != 32 {
		t.Fatalf("key length = %d, want 32", len(a))
	}
	if string(a) != string(deriveInviteKey("secret")) {
		t.Fatal("key derivation should be deterministic")
	}
	if string(a) == string(deriveInviteKey("secret2")) {
		t.Fatal("different secrets should derive different keys")
	}
	if deriveInviteKey("") != nil {
		t.Fatal("empty secret should derive no key")
	}
}

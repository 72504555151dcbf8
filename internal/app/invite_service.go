package app

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const inviteKeyInfo = "punto-invite-hs256"

// Invite is the verified content of an invitation token.
type Invite struct {
	ID        string
	MatchID   string
	InviterID string
	ExpiresAt time.Time
}

// InviteService issues and verifies signed links that let friends join a match.
type InviteService struct {
	key    []byte
	issuer string
	ttl    time.Duration
}

// NewInviteService derives the HS256 key from secret with HKDF-SHA256.
func NewInviteService(secret, issuer string, ttl time.Duration) *InviteService {
	return &InviteService{
		key:    deriveInviteKey(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

func deriveInviteKey(secret string) []byte {
	if secret == "" {
		return nil
	}
	key := make([]byte, sha256.Size)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(inviteKeyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil
	}
	return key
}

// CreateInvite signs an HS256 token naming the match and the inviting user.
func (s *InviteService) CreateInvite(matchID, inviterID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("invite service is nil")
	}
	if len(s.key) == 0 || s.issuer == "" {
		return "", fmt.Errorf("invite config is incomplete")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}
	if inviterID == "" {
		return "", fmt.Errorf("inviter is required")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": inviterID,
		"mid": matchID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// ParseInvite verifies the token signature, issuer and expiry.
func (s *InviteService) ParseInvite(tokenString string) (Invite, error) {
	if s == nil || len(s.key) == 0 {
		return Invite{}, fmt.Errorf("invite config is incomplete")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return Invite{}, fmt.Errorf("invalid invite: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Invite{}, fmt.Errorf("invalid invite claims")
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return Invite{}, fmt.Errorf("invite issued by %v", claims["iss"])
	}

	matchID, _ := claims["mid"].(string)
	inviterID, _ := claims["sub"].(string)
	id, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	if matchID == "" {
		return Invite{}, fmt.Errorf("invite is missing match id")
	}

	return Invite{
		ID:        id,
		MatchID:   matchID,
		InviterID: inviterID,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}

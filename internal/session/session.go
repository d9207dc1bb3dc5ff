// Package session resolves which owner the console is acting for. The
// backend verifies the bearer token on every call it receives; here we only
// read the identity claims so create payloads can carry the owner id.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("no session token configured")
	ErrTokenExpired = errors.New("session token has expired")
)

// TokenIdentity reads the owner id from the backend-issued bearer token's
// sub claim. The signature is the backend's to check, not ours.
type TokenIdentity struct {
	token  string
	parser *jwt.Parser
}

func NewTokenIdentity(token string) *TokenIdentity {
	return &TokenIdentity{
		token:  token,
		parser: jwt.NewParser(),
	}
}

func (t *TokenIdentity) OwnerID(ctx context.Context) (int64, error) {
	if t.token == "" {
		return 0, ErrNoToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := t.parser.ParseUnverified(t.token, claims); err != nil {
		return 0, fmt.Errorf("parse session token: %w", err)
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			return 0, ErrTokenExpired
		}
	}

	sub, ok := claims["sub"]
	if !ok {
		return 0, errors.New("session token has no sub claim")
	}
	return subjectID(sub)
}

// subjectID copes with the shapes JSON decoding can give the sub claim.
func subjectID(sub any) (int64, error) {
	switch v := sub.(type) {
	case float64:
		return int64(v), nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("sub claim %q is not an owner id: %w", v, err)
		}
		return id, nil
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("sub claim %q is not an owner id: %w", v, err)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("sub claim has unexpected type %T", sub)
	}
}

// StaticIdentity pins the owner id, used when OWNER_ID is set explicitly
// and in tests.
type StaticIdentity struct {
	ID int64
}

func (s StaticIdentity) OwnerID(ctx context.Context) (int64, error) {
	if s.ID <= 0 {
		return 0, errors.New("static owner id is not set")
	}
	return s.ID, nil
}

package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrTokenNoIdentity = errors.New("token has no identity")
)

// Claims carried by every access token.
type Claims struct {
	Email              string `json:"email"`
	IsUniqueAccessLink bool   `json:"is_unique_access_link"`
	// UserID pins a link session to the respondent row it was issued for.
	UserID uint `json:"id_usuario,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock swaps the time source used for issuing and expiry checks.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue signs a regular token for identity (the account email).
func (s *TokenService) Issue(identity string) (string, time.Time, error) {
	return s.sign(Claims{Email: identity})
}

// IssueLinkSession signs a token obtained through a unique access link. The
// respondent id travels in the claims so the session can never be resolved
// to another row carrying the same email or phone.
func (s *TokenService) IssueLinkSession(identity string, userID uint) (string, time.Time, error) {
	if userID == 0 {
		return "", time.Time{}, errors.New("link session without user id")
	}
	return s.sign(Claims{Email: identity, IsUniqueAccessLink: true, UserID: userID})
}

func (s *TokenService) sign(claims Claims) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret is empty")
	}
	now := s.now()
	exp := now.Add(s.ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks signature and expiry and returns the claims. Failures are
// ErrTokenExpired, ErrTokenInvalid or ErrTokenNoIdentity.
func (s *TokenService) Verify(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" || len(s.secret) == 0 {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{}
	// exp dicek manual pakai clock sendiri
	parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing exp", ErrTokenInvalid)
	}
	if s.now().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	if strings.TrimSpace(claims.Email) == "" {
		return nil, ErrTokenNoIdentity
	}
	if claims.IsUniqueAccessLink && claims.UserID == 0 {
		return nil, fmt.Errorf("%w: link session without id_usuario", ErrTokenInvalid)
	}
	return claims, nil
}

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var ErrInvalidToken = errors.New("invalid access token")

// Claims are the JWT claims understood by the wallet. The subject carries
// the base58 principal of the caller.
type Claims struct {
	Role Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Caller is the authenticated party of a request.
type Caller struct {
	Principal Principal
	Role      Role
}

// AnonymousCaller is attached to requests without credentials.
func AnonymousCaller() *Caller {
	return &Caller{Principal: Anonymous, Role: RoleUser}
}

// TokenService issues and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewTokenService(secret []byte, issuer string) *TokenService {
	return &TokenService{
		secret: secret,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue signs a token for principal p, valid for ttl.
func (s *TokenService) Issue(p Principal, role Role, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token secret not configured")
	}

	now := s.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}

// Verify parses tokenString and returns the caller it identifies.
func (s *TokenService) Verify(tokenString string) (*Caller, error) {
	if len(s.secret) == 0 {
		return nil, errors.Wrap(ErrInvalidToken, "token secret not configured")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	principal, err := ParsePrincipal(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	role := claims.Role
	if role == "" {
		role = RoleUser
	}
	if !role.IsKnown() {
		return nil, errors.Wrapf(ErrInvalidToken, "unknown role %q", role)
	}

	return &Caller{Principal: principal, Role: role}, nil
}

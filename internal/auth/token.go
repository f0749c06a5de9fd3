package auth

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// claimEmpID is the claim carrying the authenticated employee id.
const claimEmpID = "emp_id"

// Config holds token issuance settings.
type Config struct {
	Secret string
	TTL    time.Duration
}

// ConfigFromEnv reads token config from environment variables.
func ConfigFromEnv() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	ttl := 2 * time.Hour
	if v := os.Getenv("JWT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}
	return Config{Secret: secret, TTL: ttl}
}

// TokenIssuer mints and verifies HS256 tokens carrying an employee id.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

func NewTokenIssuer(cfg Config) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		// snowflake ids exceed float64's exact integer range, so numeric
		// claims must decode as json.Number
		parser: jwt.NewParser(jwt.WithJSONNumber()),
	}
}

var ErrInvalidToken = errors.New("invalid token")

// Issue signs a token for the given employee id, expiring after the
// configured TTL.
func (t *TokenIssuer) Issue(empID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		claimEmpID: empID,
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Parse verifies signature and expiry and returns the embedded employee id.
func (t *TokenIssuer) Parse(token string) (int64, error) {
	claims := jwt.MapClaims{}
	tok, err := t.parser.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	num, ok := claims[claimEmpID].(json.Number)
	if !ok {
		return 0, ErrInvalidToken
	}
	id, err := num.Int64()
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

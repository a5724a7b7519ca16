package jwt

import (
	"errors"
	"time"

	"github.com/accelor-hrms/hrms-backend-go/internal/domain/access"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrInvalidClaims = errors.New("token claims are missing or invalid")

const (
	ClaimUserID     = "user_id"
	ClaimEmployeeID = "employee_id"
	ClaimRole       = "role"
	ClaimType       = "type"

	tokenTypeAccess = "access"
)

type Service interface {
	// GenerateAccessToken signs a token carrying the caller's identity.
	GenerateAccessToken(caller access.Caller, ttl time.Duration) (token string, expiresAt int64, err error)
	// CallerFromClaims reads the identity back out of verified claims.
	CallerFromClaims(claims map[string]interface{}) (access.Caller, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(caller access.Caller, ttl time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(ttl).Unix()

	claims := map[string]interface{}{
		ClaimUserID:     caller.UserID,
		ClaimEmployeeID: caller.EmployeeID,
		ClaimRole:       string(caller.Role),
		ClaimType:       tokenTypeAccess,
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) CallerFromClaims(claims map[string]interface{}) (access.Caller, error) {
	if tokenType, _ := claims[ClaimType].(string); tokenType != tokenTypeAccess {
		return access.Caller{}, ErrInvalidClaims
	}

	userID, ok := claims[ClaimUserID].(string)
	if !ok || userID == "" {
		return access.Caller{}, ErrInvalidClaims
	}

	role, ok := claims[ClaimRole].(string)
	if !ok || role == "" {
		return access.Caller{}, ErrInvalidClaims
	}

	// employee_id may be absent for accounts without an employee record.
	employeeID, _ := claims[ClaimEmployeeID].(string)

	return access.Caller{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       access.Role(role),
	}, nil
}

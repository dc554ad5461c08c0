package service

import (
	"github.com/rajeev8964/thepersonalbuddy/config"
	"github.com/rajeev8964/thepersonalbuddy/internal/auth"
	"github.com/rajeev8964/thepersonalbuddy/internal/domain"
)

// AccessService derives admin privilege from the role store, keyed by a
// cryptographically verified subject. It is stateless: every privileged
// call re-verifies, so a revoked admin loses access on the next request.
type AccessService struct {
	jwt   *config.JWTConfig
	roles RoleStore
}

func NewAccessService(jwt *config.JWTConfig, roles RoleStore) *AccessService {
	return &AccessService{jwt: jwt, roles: roles}
}

// VerifyAdmin validates the bearer token and checks the role store for an
// admin row. An absent or invalid credential returns auth.ErrInvalidToken
// without any store query. A store failure is returned distinctly so the
// caller can fail closed.
func (s *AccessService) VerifyAdmin(token string) (bool, error) {
	if token == "" {
		return false, auth.ErrInvalidToken
	}
	claims, err := auth.ParseAccessToken(s.jwt, token)
	if err != nil {
		return false, auth.ErrInvalidToken
	}
	if claims.UserID == "" {
		return false, auth.ErrInvalidToken
	}
	return s.roles.HasRole(claims.UserID, domain.RoleAdmin)
}

// IsAdmin checks an already-authenticated subject against the role store.
func (s *AccessService) IsAdmin(userID string) (bool, error) {
	return s.roles.HasRole(userID, domain.RoleAdmin)
}

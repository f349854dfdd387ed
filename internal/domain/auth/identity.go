package auth

import (
	"context"
	"encoding/json"

	"github.com/go-chi/jwtauth/v5"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Identity is the verified acting subject of a request. It is extracted once
// from the token claims and passed explicitly into service operations instead
// of re-deriving role and subject id inside each one.
type Identity struct {
	Role      Role
	SubjectID int64
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) IsEmployee() bool {
	return i.Role == RoleEmployee
}

// IdentityFromContext builds an Identity from the verified token claims placed
// in the request context by the jwtauth verifier middleware.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	subjectID, ok := numericClaim(claims["subject_id"])
	if !ok || subjectID <= 0 {
		return Identity{}, ErrInvalidToken
	}

	return Identity{Role: Role(roleStr), SubjectID: subjectID}, nil
}

// numericClaim tolerates the decodings a JSON number can arrive as.
func numericClaim(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		id, err := n.Int64()
		return id, err == nil
	default:
		return 0, false
	}
}

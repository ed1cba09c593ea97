package token

import "github.com/golang-jwt/jwt/v5"

type Metadata struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	BranchID *int64 `json:"branch_id"`
}

type Claim struct {
	Metadata  Metadata `json:"metadata"`
	SessionID string   `json:"session_id"`
	jwt.RegisteredClaims
}

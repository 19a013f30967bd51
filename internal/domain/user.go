package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role identifies which portal an account belongs to.
type Role string

const (
	RoleGovernment Role = "government"
	RoleProducer   Role = "producer"
	RoleAuditor    Role = "auditor"
)

// ParseRole normalizes and validates a role string.
func ParseRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	switch role {
	case RoleGovernment, RoleProducer, RoleAuditor:
		return role, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

// User is the domain model for portal accounts.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

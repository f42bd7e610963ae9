package domain

import (
	"strings"
	"time"
)

// PlatformRole is the platform-wide role. It is independent of entity membership roles.
type PlatformRole string

const (
	PlatformRoleUser       PlatformRole = "user"
	PlatformRoleSuperAdmin PlatformRole = "super_admin"
)

// Valid reports whether r is a known platform role.
func (r PlatformRole) Valid() bool {
	return r == PlatformRoleUser || r == PlatformRoleSuperAdmin
}

// User is a platform identity keyed by its normalized email.
type User struct {
	ID           string
	Email        string
	Name         string
	PlatformRole PlatformRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSuperAdmin reports whether the user holds the super-admin platform role.
func (u *User) IsSuperAdmin() bool {
	return u != nil && u.PlatformRole == PlatformRoleSuperAdmin
}

// NormalizeEmail trims and lowercases an email. All email comparisons use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DisplayName returns the trimmed name, falling back to the email local part and then "user".
func DisplayName(name, email string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	local, _, _ := strings.Cut(email, "@")
	if local = strings.TrimSpace(local); local != "" {
		return local
	}
	return "user"
}

package security

import (
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

// RoleResolver maps a verified email to its platform role.
type RoleResolver struct {
	superAdmins map[string]struct{}
}

// NewRoleResolver returns a resolver granting super admin to the given emails.
func NewRoleResolver(superAdminEmails []string) *RoleResolver {
	r := &RoleResolver{superAdmins: make(map[string]struct{}, len(superAdminEmails))}
	for _, e := range superAdminEmails {
		if e = userdomain.NormalizeEmail(e); e != "" {
			r.superAdmins[e] = struct{}{}
		}
	}
	return r
}

// PlatformRole returns super_admin for allow-listed emails and user for everyone else.
func (r *RoleResolver) PlatformRole(email string) userdomain.PlatformRole {
	if r != nil {
		if _, ok := r.superAdmins[userdomain.NormalizeEmail(email)]; ok {
			return userdomain.PlatformRoleSuperAdmin
		}
	}
	return userdomain.PlatformRoleUser
}

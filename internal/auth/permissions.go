package auth

import (
	"adboard/internal/models"
)

// Permission describes what a caller must satisfy before a mutation proceeds.
// A zero value means the corresponding rule is not evaluated. The two rules
// are independent; either failing denies the request.
type Permission struct {
	// Group the caller must carry, e.g. models.GroupAdmin.
	Group models.Group
	// OwnerID the caller's id must equal. Admins pass this rule regardless,
	// so a valid admin token may act on any user's resources.
	OwnerID uint
}

// CheckPermissions evaluates the permission rules for the current user.
// It returns a Forbidden error on the first rule the user fails.
func CheckPermissions(current *models.User, perm Permission) error {
	if perm.Group != "" && current.Group != perm.Group {
		return models.NewForbiddenError("Insufficient permissions")
	}
	if perm.OwnerID != 0 && current.ID != perm.OwnerID && !current.IsAdmin() {
		return models.NewForbiddenError("Insufficient permissions")
	}
	return nil
}

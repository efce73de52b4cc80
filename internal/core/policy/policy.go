// Package policy centralizes the role and ownership rules of the platform.
// The repositories perform no authorization of their own; every layer that
// mediates access (services, HTTP handlers) consults these predicates so
// the rules are defined exactly once.
package policy

import "github.com/recipehub/recipe-platform/internal/core/domain"

// CanView reports whether user may see the recipe. Admins see everything,
// authors see their own work regardless of approval, everyone else only
// sees approved recipes.
func CanView(user *domain.User, recipe *domain.Recipe) bool {
	if user == nil || recipe == nil {
		return false
	}
	if user.Role == domain.RoleAdmin {
		return true
	}
	if recipe.OwnedBy(user.Username) {
		return true
	}
	return recipe.Approved
}

// CanCreate reports whether user may add recipes to the catalog.
func CanCreate(user *domain.User) bool {
	if user == nil {
		return false
	}
	return user.Role == domain.RoleAdmin || user.Role == domain.RoleContributor
}

// CanEdit reports whether user may change the recipe's content fields.
// Admins may edit any recipe, contributors only their own.
func CanEdit(user *domain.User, recipe *domain.Recipe) bool {
	if user == nil || recipe == nil {
		return false
	}
	if user.Role == domain.RoleAdmin {
		return true
	}
	return user.Role == domain.RoleContributor && recipe.OwnedBy(user.Username)
}

// CanDelete mirrors CanEdit: admins any, contributors their own.
func CanDelete(user *domain.User, recipe *domain.Recipe) bool {
	return CanEdit(user, recipe)
}

// CanApprove reports whether user may flip a recipe's approved flag.
func CanApprove(user *domain.User) bool {
	return user != nil && user.Role == domain.RoleAdmin
}

// InitialApproval resolves the approved flag a new recipe starts with.
// Contributor recipes always start unapproved; admins may request either
// state at creation.
func InitialApproval(user *domain.User, requested bool) bool {
	if user != nil && user.Role == domain.RoleAdmin {
		return requested
	}
	return false
}

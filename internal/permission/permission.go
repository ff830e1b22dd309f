// Package permission holds the authorization predicates evaluated before
// any mutating service operation. Reads are open to everyone, including
// anonymous callers, so no predicate guards them.
package permission

import (
	"yamdb/internal/errors"
	"yamdb/internal/model"
)

// WriteCatalog allows catalog mutations (categories, genres, titles) for
// admins only. caller == nil means anonymous.
func WriteCatalog(caller *model.User) error {
	if caller == nil {
		return errors.ErrAuthRequired
	}
	if !caller.IsAdmin() {
		return errors.ErrForbidden
	}
	return nil
}

// ModifyAuthored allows mutation of an authored resource (review, comment)
// by its author or a moderator. Admins hold the catalog and user-management
// powers instead; the roles do not nest.
func ModifyAuthored(caller *model.User, authorID uint) error {
	if caller == nil {
		return errors.ErrAuthRequired
	}
	if caller.ID == authorID || caller.IsModerator() {
		return nil
	}
	return errors.ErrForbidden
}

// ManageUsers allows the admin user endpoints.
func ManageUsers(caller *model.User) error {
	if caller == nil {
		return errors.ErrAuthRequired
	}
	if !caller.IsAdmin() {
		return errors.ErrForbidden
	}
	return nil
}

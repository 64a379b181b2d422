// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

// Package roles derives capability predicates and the canonical display role
// from an identity's role-name set. Every function is total over nil input
// and degrades to the least-privileged answer.
package roles

import (
	"slices"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

const (
	OrganizationManager = "ORGANIZATION MANAGER"
	DepartmentManager   = "DEPARTMENT MANAGER"
	TeamManager         = "TEAM MANAGER"

	// DefaultRole is the canonical role when no recognized role is present.
	DefaultRole = "user"
)

// adminAliases are checked literally, no case folding.
var adminAliases = []string{"ADMIN", "admin"}

func hasRole(identity *types.Identity, role string) bool {
	if identity == nil || identity.Roles == nil {
		return false
	}
	return slices.Contains(identity.Roles, role)
}

// IsManagerTier reports membership in any of the three management tiers.
// ADMIN/admin is deliberately not part of this set, see
// HasAdminRedirectRights.
func IsManagerTier(identity *types.Identity) bool {
	return hasRole(identity, OrganizationManager) ||
		hasRole(identity, DepartmentManager) ||
		hasRole(identity, TeamManager)
}

func IsOrganizationManager(identity *types.Identity) bool {
	return hasRole(identity, OrganizationManager)
}

func IsDepartmentManager(identity *types.Identity) bool {
	return hasRole(identity, DepartmentManager)
}

func IsTeamManager(identity *types.Identity) bool {
	return hasRole(identity, TeamManager)
}

// HasAdminRedirectRights reports whether the identity qualifies for the
// dashboard redirect at the application entry point. Unlike IsManagerTier it
// honors the ADMIN/admin alias. The asymmetry is inherited from the upstream
// web client and kept as two separate predicates on purpose.
func HasAdminRedirectRights(identity *types.Identity) bool {
	if IsManagerTier(identity) {
		return true
	}
	for _, alias := range adminAliases {
		if hasRole(identity, alias) {
			return true
		}
	}
	return false
}

// CanonicalRole returns the single highest-precedence role name for display:
// ORGANIZATION MANAGER > DEPARTMENT MANAGER > TEAM MANAGER > first element of
// the role set > "user".
func CanonicalRole(identity *types.Identity) string {
	switch {
	case hasRole(identity, OrganizationManager):
		return OrganizationManager
	case hasRole(identity, DepartmentManager):
		return DepartmentManager
	case hasRole(identity, TeamManager):
		return TeamManager
	}
	if identity != nil && len(identity.Roles) > 0 {
		return identity.Roles[0]
	}
	return DefaultRole
}

// ShouldRedirectToDashboard is an alias for IsManagerTier kept for parity
// with the upstream helper of the same name.
func ShouldRedirectToDashboard(identity *types.Identity) bool {
	return IsManagerTier(identity)
}

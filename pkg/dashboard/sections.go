// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"slices"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/roles"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

const (
	SectionOverview      = "overview"
	SectionSurveys       = "surveys"
	SectionQuestions     = "questions"
	SectionUsers         = "users"
	SectionOrganizations = "organizations"
	SectionDepartments   = "departments"
	SectionTeams         = "teams"
	SectionRoles         = "roles"
	SectionSurveyBank    = "surveyBank"
)

// allSections is the complete section list in display order.
var allSections = []string{
	SectionOverview,
	SectionSurveys,
	SectionQuestions,
	SectionUsers,
	SectionOrganizations,
	SectionDepartments,
	SectionTeams,
	SectionRoles,
	SectionSurveyBank,
}

// The two restricted tiers carry explicit allow-lists: a section added to
// allSections stays invisible to them until listed here.
var (
	departmentManagerSections = []string{
		SectionSurveys,
		SectionQuestions,
		SectionDepartments,
		SectionTeams,
		SectionSurveyBank,
	}
	teamManagerSections = []string{
		SectionSurveys,
		SectionQuestions,
		SectionTeams,
		SectionSurveyBank,
	}
	strictFallbackSections = []string{SectionOverview}
)

// sectionsFor selects the visible section set for an identity. Any role not
// matching the two restricted tiers falls through to the full list, which
// makes the default branch the most privileged one. With strict enabled the
// fall-through instead grants only the overview, and only the organization
// manager tier keeps full access.
func sectionsFor(identity *types.Identity, strict bool) []string {
	if identity == nil {
		if strict {
			return slices.Clone(strictFallbackSections)
		}
		return slices.Clone(allSections)
	}

	switch {
	case roles.IsDepartmentManager(identity):
		return slices.Clone(departmentManagerSections)
	case roles.IsTeamManager(identity):
		return slices.Clone(teamManagerSections)
	case strict && !roles.IsOrganizationManager(identity):
		return slices.Clone(strictFallbackSections)
	default:
		return slices.Clone(allSections)
	}
}

// resolveActive keeps the requested section when the identity may see it and
// otherwise falls back to the first allowed section, or the overview when the
// allowed set is empty. A stale persisted tab must never surface a section
// the current role is not entitled to.
func resolveActive(identity *types.Identity, active string, strict bool) string {
	allowed := sectionsFor(identity, strict)
	if slices.Contains(allowed, active) {
		return active
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return SectionOverview
}

// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"slices"
	"testing"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

func TestSectionsFor(t *testing.T) {
	testCases := []struct {
		name     string
		identity *types.Identity
		want     []string
	}{
		{
			name:     "team manager gets exactly its allow-list",
			identity: &types.Identity{Roles: []string{"TEAM MANAGER"}},
			want:     []string{"surveys", "questions", "teams", "surveyBank"},
		},
		{
			name:     "department manager gets exactly its allow-list",
			identity: &types.Identity{Roles: []string{"DEPARTMENT MANAGER"}},
			want:     []string{"surveys", "questions", "departments", "teams", "surveyBank"},
		},
		{
			name:     "organization manager gets the full list",
			identity: &types.Identity{Roles: []string{"ORGANIZATION MANAGER"}},
			want:     allSections,
		},
		{
			name:     "unrecognized role falls through to the full list",
			identity: &types.Identity{Roles: []string{"AUDITOR"}},
			want:     allSections,
		},
		{
			name:     "nil identity gets the full list",
			identity: nil,
			want:     allSections,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := sectionsFor(tc.identity, false)
			if !slices.Equal(got, tc.want) {
				t.Errorf("sectionsFor() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSectionsForStrictMode(t *testing.T) {
	testCases := []struct {
		name     string
		identity *types.Identity
		want     []string
	}{
		{
			name:     "unrecognized role gets overview only",
			identity: &types.Identity{Roles: []string{"AUDITOR"}},
			want:     []string{"overview"},
		},
		{
			name:     "nil identity gets overview only",
			identity: nil,
			want:     []string{"overview"},
		},
		{
			name:     "organization manager keeps the full list",
			identity: &types.Identity{Roles: []string{"ORGANIZATION MANAGER"}},
			want:     allSections,
		},
		{
			name:     "team manager keeps its allow-list",
			identity: &types.Identity{Roles: []string{"TEAM MANAGER"}},
			want:     []string{"surveys", "questions", "teams", "surveyBank"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := sectionsFor(tc.identity, true)
			if !slices.Equal(got, tc.want) {
				t.Errorf("sectionsFor(strict) = %v, want %v", got, tc.want)
			}
		})
	}
}

// A section added to allSections must stay invisible to the restricted tiers
// because their grants are explicit allow-lists, not exclusions.
func TestRestrictedTiersUseAllowLists(t *testing.T) {
	for _, restricted := range [][]string{departmentManagerSections, teamManagerSections} {
		for _, section := range restricted {
			if !slices.Contains(allSections, section) {
				t.Errorf("allow-listed section %q missing from allSections", section)
			}
		}
	}

	departmentManager := &types.Identity{Roles: []string{"DEPARTMENT MANAGER"}}
	for _, absent := range []string{SectionUsers, SectionOrganizations, SectionRoles, SectionOverview} {
		if slices.Contains(sectionsFor(departmentManager, false), absent) {
			t.Errorf("section %q visible to department manager, want absent", absent)
		}
	}
}

func TestResolveActive(t *testing.T) {
	testCases := []struct {
		name     string
		identity *types.Identity
		active   string
		strict   bool
		want     string
	}{
		{
			name:     "allowed section is kept",
			identity: &types.Identity{Roles: []string{"TEAM MANAGER"}},
			active:   "teams",
			want:     "teams",
		},
		{
			name:     "stale tab from a prior privileged session falls back to first allowed",
			identity: &types.Identity{Roles: []string{"DEPARTMENT MANAGER"}},
			active:   "users",
			want:     "surveys",
		},
		{
			name:     "organization manager keeps any known section",
			identity: &types.Identity{Roles: []string{"ORGANIZATION MANAGER"}},
			active:   "users",
			want:     "users",
		},
		{
			name:     "unknown section falls back for the full list too",
			identity: &types.Identity{Roles: []string{"ORGANIZATION MANAGER"}},
			active:   "billing",
			want:     "overview",
		},
		{
			name:     "strict mode resets unrecognized roles to overview",
			identity: &types.Identity{Roles: []string{"AUDITOR"}},
			active:   "users",
			strict:   true,
			want:     "overview",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveActive(tc.identity, tc.active, tc.strict); got != tc.want {
				t.Errorf("resolveActive(%q) = %q, want %q", tc.active, got, tc.want)
			}
		})
	}
}

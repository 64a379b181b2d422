// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

// DataClientInterface is the slice of the survey collaborator the composer
// loads dashboard collections through.
type DataClientInterface interface {
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	ListDepartments(ctx context.Context) ([]types.Department, error)
	ListTeams(ctx context.Context) ([]types.Team, error)
	ListUsers(ctx context.Context) ([]types.User, error)
	ListRoles(ctx context.Context) ([]types.Role, error)
	ListPermissions(ctx context.Context) ([]types.Permission, error)
	ListSurveys(ctx context.Context) ([]types.Survey, error)
	ListQuestions(ctx context.Context) ([]types.Question, error)
	ListSurveyResponses(ctx context.Context) ([]types.SurveyResponse, error)
}

type ComposerInterface interface {
	Sections(identity *types.Identity) []string
	ResolveActive(identity *types.Identity, active string) string
	Load(ctx context.Context, identity *types.Identity) *ViewData
	Compose(ctx context.Context, identity *types.Identity, active string) *View
}

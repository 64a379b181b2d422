// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package surveyapi

import (
	"context"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

type ClientInterface interface {
	RegisterOrganization(ctx context.Context, registration OrgRegistration) (*types.Organization, error)
	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	ListDepartments(ctx context.Context) ([]types.Department, error)
	ListTeams(ctx context.Context) ([]types.Team, error)
	ListUsers(ctx context.Context) ([]types.User, error)
	ListRoles(ctx context.Context) ([]types.Role, error)
	ListPermissions(ctx context.Context) ([]types.Permission, error)
	ListSurveys(ctx context.Context) ([]types.Survey, error)
	GetSurvey(ctx context.Context, id string) (*types.Survey, error)
	ListQuestions(ctx context.Context) ([]types.Question, error)
	ListOptionsByQuestion(ctx context.Context, questionID string) ([]types.Option, error)
	ListSurveyResponses(ctx context.Context) ([]types.SurveyResponse, error)
}

type OrgRegistration struct {
	OrganizationName string `json:"organizationName"`
	Type             string `json:"type,omitempty"`
}

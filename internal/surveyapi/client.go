// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

// Package surveyapi consumes the survey backend's REST contract: the
// organization registry plus the read surface backing the dashboard data
// loads and the survey page.
package surveyapi

import (
	"context"
	"net/http"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/httpclient"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

type Client struct {
	http *httpclient.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(http *httpclient.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		http:    http,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterOrganization creates an organization. The collaborator returns the
// new ID as either "id" or "_id" depending on its storage backend, both are
// accepted.
func (c *Client) RegisterOrganization(ctx context.Context, registration OrgRegistration) (*types.Organization, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.RegisterOrganization")
	defer span.End()

	var payload struct {
		ID             string `json:"id"`
		LegacyID       string `json:"_id"`
		Name           string `json:"name"`
		Type           string `json:"type"`
		InvitationCode string `json:"invitationCode"`
	}
	if err := c.http.Do(ctx, http.MethodPost, "/organizations/register", registration, &payload); err != nil {
		return nil, err
	}

	id := payload.ID
	if id == "" {
		id = payload.LegacyID
	}

	return &types.Organization{
		ID:             id,
		Name:           payload.Name,
		Type:           payload.Type,
		InvitationCode: payload.InvitationCode,
	}, nil
}

func (c *Client) GetOrganization(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.GetOrganization")
	defer span.End()

	org := new(types.Organization)
	if err := c.http.Do(ctx, http.MethodGet, "/organizations/"+id, nil, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (c *Client) ListDepartments(ctx context.Context) ([]types.Department, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.ListDepartments")
	defer span.End()

	var departments []types.Department
	if err := c.http.Do(ctx, http.MethodGet, "/departments", nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (c *Client) ListTeams(ctx context.Context) ([]types.Team, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.ListTeams")
	defer span.End()

	var teams []types.Team
	if err := c.http.Do(ctx, http.MethodGet, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]types.User, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.ListUsers")
	defer span.End()

	var users []types.User
	if err := c.http.Do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ListRoles(ctx context.Context) ([]types.Role, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.ListRoles")
	defer span.End()

	var roles []types.Role
	if err := c.http.Do(ctx, http.MethodGet, "/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) ListPermissions(ctx context.Context) ([]types.Permission, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.ListPermissions")
	defer span.End()

	var permissions []types.Permission
	if err := c.http.Do(ctx, http.MethodGet, "/permissions", nil, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

func (c *Client) ListSurveys(ctx context.Context) ([]types.Survey, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.ListSurveys")
	defer span.End()

	var surveys []types.Survey
	if err := c.http.Do(ctx, http.MethodGet, "/surveys", nil, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (c *Client) GetSurvey(ctx context.Context, id string) (*types.Survey, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.GetSurvey")
	defer span.End()

	survey := new(types.Survey)
	if err := c.http.Do(ctx, http.MethodGet, "/surveys/"+id, nil, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

func (c *Client) ListQuestions(ctx context.Context) ([]types.Question, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.ListQuestions")
	defer span.End()

	var questions []types.Question
	if err := c.http.Do(ctx, http.MethodGet, "/questions", nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) ListOptionsByQuestion(ctx context.Context, questionID string) ([]types.Option, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.ListOptionsByQuestion")
	defer span.End()

	var options []types.Option
	if err := c.http.Do(ctx, http.MethodGet, "/options/byQuestion/"+questionID, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (c *Client) ListSurveyResponses(ctx context.Context) ([]types.SurveyResponse, error) {
	ctx, span := c.tracer.Start(ctx, "surveyapi.Client.ListSurveyResponses")
	defer span.End()

	var responses []types.SurveyResponse
	if err := c.http.Do(ctx, http.MethodGet, "/survey-response", nil, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

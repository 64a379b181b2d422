// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

// Package authapi consumes the auth collaborator's REST contract. The
// collaborator's response shape varies by registration path, so every
// identity-bearing response is normalized into types.Identity at this
// boundary instead of leaking the raw payload upward.
package authapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/httpclient"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

// ErrSessionExpired is returned when the silent session check fails after the
// single refresh retry.
var ErrSessionExpired = errors.New("session verification and refresh failed")

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

func (c *Client) Login(ctx context.Context, credentials Credentials) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "authapi.Client.Login")
	defer span.End()

	payload := new(identityPayload)
	if err := c.http.Do(ctx, http.MethodPost, "/auth/login", credentials, payload); err != nil {
		return nil, err
	}

	return payload.identity(), nil
}

func (c *Client) RegisterForNewOrg(ctx context.Context, orgID string, registration Registration) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "authapi.Client.RegisterForNewOrg")
	defer span.End()

	payload := new(identityPayload)
	if err := c.http.Do(ctx, http.MethodPost, "/auth/register/"+orgID, registration, payload); err != nil {
		return nil, err
	}

	return payload.identity(), nil
}

func (c *Client) RegisterForExistingOrg(ctx context.Context, registration Registration) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "authapi.Client.RegisterForExistingOrg")
	defer span.End()

	payload := new(identityPayload)
	if err := c.http.Do(ctx, http.MethodPost, "/auth/register", registration, payload); err != nil {
		return nil, err
	}

	return payload.identity(), nil
}

// CurrentUser resolves the session via GET /auth/me. A 401 triggers one
// silent POST /auth/refresh followed by one retry of /auth/me; the second
// failure propagates as ErrSessionExpired.
func (c *Client) CurrentUser(ctx context.Context) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "authapi.Client.CurrentUser")
	defer span.End()

	payload := new(identityPayload)
	err := c.http.Do(ctx, http.MethodGet, "/auth/me", nil, payload)
	if err == nil {
		if !payload.Success {
			return nil, ErrSessionExpired
		}
		return payload.identity(), nil
	}

	var apiErr *httpclient.APIError
	if !errors.As(err, &apiErr) || !apiErr.Unauthorized() {
		return nil, err
	}

	if err := c.http.Do(ctx, http.MethodPost, "/auth/refresh", nil, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	payload = new(identityPayload)
	if err := c.http.Do(ctx, http.MethodGet, "/auth/me", nil, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	if !payload.Success {
		return nil, ErrSessionExpired
	}

	return payload.identity(), nil
}

// Logout is best effort, the failure is logged and swallowed.
func (c *Client) Logout(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "authapi.Client.Logout")
	defer span.End()

	if err := c.http.Do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		c.logger.Errorf("backend logout failed: %v", err)
		return err
	}
	return nil
}

// identityPayload accepts both collaborator response shapes: the full user
// envelope ({"success": true, "user": {...}} or identity fields at the top
// level) and the minimal fallback shape {username, organizationId, roles}.
type identityPayload struct {
	Success bool            `json:"success"`
	User    *types.Identity `json:"user"`

	Username       string   `json:"username"`
	Email          string   `json:"email"`
	OrganizationID string   `json:"organizationId"`
	Roles          []string `json:"roles"`
	DepartmentID   string   `json:"departmentId"`
	TeamID         string   `json:"teamId"`
}

func (p *identityPayload) identity() *types.Identity {
	identity := p.User
	if identity == nil {
		identity = &types.Identity{
			Username:       p.Username,
			Email:          p.Email,
			OrganizationID: p.OrganizationID,
			Roles:          p.Roles,
			DepartmentID:   p.DepartmentID,
			TeamID:         p.TeamID,
		}
	}

	// Roles is never nil on a live Identity.
	if identity.Roles == nil {
		identity.Roles = []string{}
	}

	return identity
}

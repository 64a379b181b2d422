// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package authapi

import (
	"context"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

type ClientInterface interface {
	Login(ctx context.Context, credentials Credentials) (*types.Identity, error)
	RegisterForNewOrg(ctx context.Context, orgID string, registration Registration) (*types.Identity, error)
	RegisterForExistingOrg(ctx context.Context, registration Registration) (*types.Identity, error)
	CurrentUser(ctx context.Context) (*types.Identity, error)
	Logout(ctx context.Context) error
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	InviteCode string `json:"inviteCode,omitempty"`
}

// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/authapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

// AuthClientInterface is the subset of the auth collaborator client the
// store depends on.
type AuthClientInterface interface {
	Login(ctx context.Context, credentials authapi.Credentials) (*types.Identity, error)
	RegisterForNewOrg(ctx context.Context, orgID string, registration authapi.Registration) (*types.Identity, error)
	RegisterForExistingOrg(ctx context.Context, registration authapi.Registration) (*types.Identity, error)
	CurrentUser(ctx context.Context) (*types.Identity, error)
	Logout(ctx context.Context) error
}

// ArtifactInterface is the locally persisted session marker, the analogue of
// the web client's stored auth state. It is cleared on logout and on silent
// resumption failure.
type ArtifactInterface interface {
	Clear() error
}

type StoreInterface interface {
	AutoLogin(ctx context.Context)
	Login(ctx context.Context, credentials authapi.Credentials) error
	Logout(ctx context.Context)
	RegisterForNewOrg(ctx context.Context, orgID string, registration authapi.Registration) error
	RegisterForExistingOrg(ctx context.Context, registration authapi.Registration) error
	ClearAuthErrors()
	ResetAuth()
	Snapshot() Session
	Identity() *types.Identity
	IsInitialized() bool
	WaitInitialized(ctx context.Context) error
}

// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package authflow

import (
	"context"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/authapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/surveyapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

// SessionInterface is the slice of the session store the auth flow drives.
type SessionInterface interface {
	Login(ctx context.Context, credentials authapi.Credentials) error
	RegisterForNewOrg(ctx context.Context, orgID string, registration authapi.Registration) error
	RegisterForExistingOrg(ctx context.Context, registration authapi.Registration) error
	ClearAuthErrors()
}

// OrgClientInterface creates organizations on the survey collaborator during
// the create-organization signup path.
type OrgClientInterface interface {
	RegisterOrganization(ctx context.Context, registration surveyapi.OrgRegistration) (*types.Organization, error)
}

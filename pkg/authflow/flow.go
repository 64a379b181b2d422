// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

// Package authflow runs the public entry flow: login, organization creation,
// and the two signup paths. Validation failures are computed before any
// network call and rendered inline per field.
package authflow

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/authapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/surveyapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
)

// The four auth flow views. signup is only reachable through organization
// creation, which supplies the organization id the signup registers against.
const (
	ViewLogin        = "login"
	ViewSignup       = "signup"
	ViewSignupUser   = "signupUser"
	ViewOrganization = "organization"
)

// ErrNoOrganization is returned when the new-organization signup is submitted
// before an organization has been created.
var ErrNoOrganization = errors.New("no organization created for signup")

// ErrOrganizationWithoutID is returned when the collaborator acknowledges an
// organization creation without an id to chain the signup to.
var ErrOrganizationWithoutID = errors.New("organization response carried no id")

type Flow struct {
	sessions SessionInterface
	orgs     OrgClientInterface
	validate *validator.Validate

	mu    sync.Mutex
	view  string
	orgID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewFlow(sessions SessionInterface, orgs OrgClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Flow {
	return &Flow{
		sessions: sessions,
		orgs:     orgs,
		validate: newValidator(),
		view:     ViewLogin,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// View returns the currently shown auth view.
func (f *Flow) View() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view
}

// OrgID returns the organization id captured by the last successful
// organization creation, empty when none.
func (f *Flow) OrgID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orgID
}

// switchTo changes the visible view and drops stale form errors so they
// don't leak across forms.
func (f *Flow) switchTo(view string) {
	f.sessions.ClearAuthErrors()
	f.mu.Lock()
	f.view = view
	f.mu.Unlock()
}

func (f *Flow) SwitchToLogin() { f.switchTo(ViewLogin) }

func (f *Flow) SwitchToCreateOrganization() { f.switchTo(ViewOrganization) }

func (f *Flow) SwitchToJoinOrganization() { f.switchTo(ViewSignupUser) }

// Login validates the form and, when clean, delegates to the session store.
// Collaborator failures land in the store's login error slot, not here.
func (f *Flow) Login(ctx context.Context, form LoginForm) (FieldErrors, error) {
	ctx, span := f.tracer.Start(ctx, "authflow.Flow.Login")
	defer span.End()

	form.Email = strings.TrimSpace(form.Email)
	if fieldErrors := checkForm(f.validate, form); len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	return nil, f.sessions.Login(ctx, authapi.Credentials{Email: form.Email, Password: form.Password})
}

// CreateOrganization creates the organization and, on success, advances the
// flow to the new-organization signup chained to the returned id.
func (f *Flow) CreateOrganization(ctx context.Context, form OrganizationForm) (FieldErrors, error) {
	ctx, span := f.tracer.Start(ctx, "authflow.Flow.CreateOrganization")
	defer span.End()

	form.OrganizationName = strings.TrimSpace(form.OrganizationName)
	if fieldErrors := checkForm(f.validate, form); len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	organization, err := f.orgs.RegisterOrganization(ctx, surveyapi.OrgRegistration{
		OrganizationName: form.OrganizationName,
		Type:             form.Type,
	})
	if err != nil {
		return nil, err
	}
	if organization == nil || organization.ID == "" {
		return nil, ErrOrganizationWithoutID
	}

	f.mu.Lock()
	f.orgID = organization.ID
	f.view = ViewSignup
	f.mu.Unlock()

	f.logger.Infof("organization %s created, proceeding to signup", organization.ID)
	return nil, nil
}

// SignupForNewOrg registers the first user of the organization created by
// CreateOrganization.
func (f *Flow) SignupForNewOrg(ctx context.Context, form SignupForm) (FieldErrors, error) {
	return f.SignupForOrg(ctx, f.OrgID(), form)
}

// SignupForOrg registers the first user of an explicitly named organization.
func (f *Flow) SignupForOrg(ctx context.Context, orgID string, form SignupForm) (FieldErrors, error) {
	ctx, span := f.tracer.Start(ctx, "authflow.Flow.SignupForOrg")
	defer span.End()

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if fieldErrors := checkForm(f.validate, form); len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	if orgID == "" {
		return nil, ErrNoOrganization
	}

	return nil, f.sessions.RegisterForNewOrg(ctx, orgID, authapi.Registration{
		Username: form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
}

// SignupForExistingOrg registers a user into an existing organization by
// invitation code.
func (f *Flow) SignupForExistingOrg(ctx context.Context, form JoinForm) (FieldErrors, error) {
	ctx, span := f.tracer.Start(ctx, "authflow.Flow.SignupForExistingOrg")
	defer span.End()

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.InvitationCode = strings.TrimSpace(form.InvitationCode)
	if fieldErrors := checkForm(f.validate, form); len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	return nil, f.sessions.RegisterForExistingOrg(ctx, authapi.Registration{
		Username:   form.Name,
		Email:      form.Email,
		Password:   form.Password,
		InviteCode: form.InvitationCode,
	})
}

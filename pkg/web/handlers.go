// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

// Package web exposes the application surface: the navigable route table with
// its guard redirects, and the JSON endpoints backing the auth flow and the
// role-scoped views.
package web

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/roles"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/surveyapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/authflow"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/dashboard"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/guard"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/session"
)

type API struct {
	sessions session.StoreInterface
	guard    *guard.Guard
	flow     *authflow.Flow
	composer dashboard.ComposerInterface
	surveys  surveyapi.ClientInterface

	logger logging.LoggerInterface
}

func NewAPI(sessions session.StoreInterface, g *guard.Guard, flow *authflow.Flow, composer dashboard.ComposerInterface, surveys surveyapi.ClientInterface, logger logging.LoggerInterface) *API {
	return &API{
		sessions: sessions,
		guard:    g,
		flow:     flow,
		composer: composer,
		surveys:  surveys,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	// Navigable routes.
	mux.Method(http.MethodGet, guard.PathEntry, a.guard.Entry(http.HandlerFunc(a.entry)))
	mux.Method(http.MethodGet, guard.PathDashboard, a.guard.Protect(http.HandlerFunc(a.dashboardView)))
	mux.Method(http.MethodGet, guard.PathUserHome, a.guard.Protect(http.HandlerFunc(a.userHomeView)))
	mux.Method(http.MethodGet, guard.PathSurvey, a.guard.Protect(http.HandlerFunc(a.surveyView)))
	mux.NotFound(a.guard.CatchAll())

	// Auth flow.
	mux.Post("/api/v0/auth/login", a.login)
	mux.Post("/api/v0/auth/logout", a.logout)
	mux.Post("/api/v0/auth/register", a.registerExistingOrg)
	mux.Post("/api/v0/auth/register/{orgId}", a.registerNewOrg)
	mux.Get("/api/v0/auth/me", a.me)
	mux.Post("/api/v0/organizations/register", a.registerOrganization)

	// Role-scoped views.
	mux.Method(http.MethodGet, "/api/v0/view/dashboard", a.guard.Protect(http.HandlerFunc(a.dashboardView)))
	mux.Method(http.MethodGet, "/api/v0/view/user-home", a.guard.Protect(http.HandlerFunc(a.userHomeView)))
	mux.Method(http.MethodGet, "/api/v0/view/survey/{surveyId}", a.guard.Protect(http.HandlerFunc(a.surveyView)))
}

type loginResponse struct {
	Identity    *types.Identity `json:"identity"`
	LandingPath string          `json:"landingPath"`
}

type fieldErrorResponse struct {
	FieldErrors authflow.FieldErrors `json:"fieldErrors"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusOKResponse struct {
	Status string `json:"status"`
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) entry(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"view": a.flow.View()})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var form authflow.LoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	fieldErrors, err := a.flow.Login(r.Context(), form)
	if len(fieldErrors) > 0 {
		a.writeJSON(w, http.StatusBadRequest, fieldErrorResponse{FieldErrors: fieldErrors})
		return
	}
	if err != nil {
		message := a.sessions.Snapshot().ErrLogin
		if message == "" {
			message = err.Error()
		}
		a.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: message})
		return
	}

	identity := a.sessions.Identity()
	a.writeJSON(w, http.StatusOK, loginResponse{Identity: identity, LandingPath: guard.LandingPath(identity)})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Logout(r.Context())
	a.writeJSON(w, http.StatusOK, statusOKResponse{Status: "ok"})
}

func (a *API) registerExistingOrg(w http.ResponseWriter, r *http.Request) {
	var form authflow.JoinForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	fieldErrors, err := a.flow.SignupForExistingOrg(r.Context(), form)
	if len(fieldErrors) > 0 {
		a.writeJSON(w, http.StatusBadRequest, fieldErrorResponse{FieldErrors: fieldErrors})
		return
	}
	if err != nil {
		message := a.sessions.Snapshot().ErrRegisterExistingOrg
		if message == "" {
			message = err.Error()
		}
		a.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: message})
		return
	}

	identity := a.sessions.Identity()
	a.writeJSON(w, http.StatusOK, loginResponse{Identity: identity, LandingPath: guard.LandingPath(identity)})
}

func (a *API) registerNewOrg(w http.ResponseWriter, r *http.Request) {
	var form authflow.SignupForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	fieldErrors, err := a.flow.SignupForOrg(r.Context(), chi.URLParam(r, "orgId"), form)
	if len(fieldErrors) > 0 {
		a.writeJSON(w, http.StatusBadRequest, fieldErrorResponse{FieldErrors: fieldErrors})
		return
	}
	if err != nil {
		message := a.sessions.Snapshot().ErrRegisterNewOrg
		if message == "" {
			message = err.Error()
		}
		a.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: message})
		return
	}

	identity := a.sessions.Identity()
	a.writeJSON(w, http.StatusOK, loginResponse{Identity: identity, LandingPath: guard.LandingPath(identity)})
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.WaitInitialized(r.Context()); err != nil {
		a.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "session not resolved"})
		return
	}

	identity := a.sessions.Identity()
	if identity == nil {
		a.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}
	a.writeJSON(w, http.StatusOK, identity)
}

func (a *API) registerOrganization(w http.ResponseWriter, r *http.Request) {
	var form authflow.OrganizationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	fieldErrors, err := a.flow.CreateOrganization(r.Context(), form)
	if len(fieldErrors) > 0 {
		a.writeJSON(w, http.StatusBadRequest, fieldErrorResponse{FieldErrors: fieldErrors})
		return
	}
	if err != nil {
		a.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]string{"orgId": a.flow.OrgID(), "view": a.flow.View()})
}

func (a *API) dashboardView(w http.ResponseWriter, r *http.Request) {
	view := a.composer.Compose(r.Context(), a.sessions.Identity(), r.URL.Query().Get("tab"))
	a.writeJSON(w, http.StatusOK, view)
}

type userHomeResponse struct {
	Identity      *types.Identity `json:"identity"`
	CanonicalRole string          `json:"canonicalRole"`
	Surveys       []types.Survey  `json:"surveys"`
}

func (a *API) userHomeView(w http.ResponseWriter, r *http.Request) {
	identity := a.sessions.Identity()

	// The user home lists surveys open to the member; an unavailable list is
	// rendered empty, not as a failure.
	surveys, err := a.surveys.ListSurveys(r.Context())
	if err != nil {
		a.logger.Errorf("failed to load surveys: %v", err)
		surveys = nil
	}

	a.writeJSON(w, http.StatusOK, userHomeResponse{
		Identity:      identity,
		CanonicalRole: roles.CanonicalRole(identity),
		Surveys:       surveys,
	})
}

func (a *API) surveyView(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "surveyId")

	survey, err := a.surveys.GetSurvey(r.Context(), surveyID)
	if err != nil {
		a.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	// Options arrive from a separate endpoint and are stitched onto their
	// questions; a failed options fetch leaves the question without options.
	for i := range survey.Questions {
		if len(survey.Questions[i].Options) > 0 {
			continue
		}
		options, err := a.surveys.ListOptionsByQuestion(r.Context(), survey.Questions[i].ID)
		if err != nil {
			a.logger.Errorf("failed to load options for question %s: %v", survey.Questions[i].ID, err)
			continue
		}
		survey.Questions[i].Options = options
	}

	a.writeJSON(w, http.StatusOK, survey)
}

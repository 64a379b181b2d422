// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package guard -destination ./mock_guard.go -source=./interfaces.go

func newTestGuard(t *testing.T) (*Guard, *MockSessionInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)

	sessions := NewMockSessionInterface(ctrl)
	g := NewGuard(sessions, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return g, sessions
}

func TestLandingPath(t *testing.T) {
	testCases := []struct {
		name     string
		identity *types.Identity
		want     string
	}{
		{"organization manager", &types.Identity{Roles: []string{"ORGANIZATION MANAGER"}}, PathDashboard},
		{"department manager", &types.Identity{Roles: []string{"DEPARTMENT MANAGER"}}, PathDashboard},
		{"team manager", &types.Identity{Roles: []string{"TEAM MANAGER"}}, PathDashboard},
		{"uppercase admin alias", &types.Identity{Roles: []string{"ADMIN"}}, PathDashboard},
		{"lowercase admin alias", &types.Identity{Roles: []string{"admin"}}, PathDashboard},
		{"mixed-case admin is not an alias", &types.Identity{Roles: []string{"Admin"}}, PathUserHome},
		{"plain user", &types.Identity{Roles: []string{"user"}}, PathUserHome},
		{"no roles", &types.Identity{Roles: []string{}}, PathUserHome},
		{"nil identity", nil, PathUserHome},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LandingPath(tc.identity); got != tc.want {
				t.Errorf("LandingPath() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProtectRedirectsAnonymous(t *testing.T) {
	g, sessions := newTestGuard(t)

	sessions.EXPECT().WaitInitialized(gomock.Any()).Return(nil)
	sessions.EXPECT().Identity().Return(nil)

	handler := g.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler reached by anonymous request")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if recorder.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusFound)
	}

	location, err := url.Parse(recorder.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parsing Location header: %v", err)
	}
	if location.Path != PathEntry {
		t.Errorf("redirect path = %q, want %q", location.Path, PathEntry)
	}
	if got := location.Query().Get("from"); got != "/dashboard" {
		t.Errorf("from = %q, want %q", got, "/dashboard")
	}
}

func TestProtectPassesAuthenticated(t *testing.T) {
	g, sessions := newTestGuard(t)

	sessions.EXPECT().WaitInitialized(gomock.Any()).Return(nil)
	sessions.EXPECT().Identity().Return(&types.Identity{Username: "alice", Roles: []string{"user"}})

	reached := false
	handler := g.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/user-home", nil))

	if !reached {
		t.Error("protected handler not reached by authenticated request")
	}
}

func TestProtectWaitsForInitialization(t *testing.T) {
	g, sessions := newTestGuard(t)

	sessions.EXPECT().WaitInitialized(gomock.Any()).Return(context.Canceled)

	handler := g.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached before session initialization resolved")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if recorder.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusServiceUnavailable)
	}
}

func TestEntryBouncesAuthenticated(t *testing.T) {
	testCases := []struct {
		name     string
		identity *types.Identity
		want     string
	}{
		{"admin alias lands on dashboard", &types.Identity{Roles: []string{"ADMIN"}}, PathDashboard},
		{"plain user lands on user home", &types.Identity{Roles: []string{"user"}}, PathUserHome},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, sessions := newTestGuard(t)

			sessions.EXPECT().WaitInitialized(gomock.Any()).Return(nil)
			sessions.EXPECT().Identity().Return(tc.identity)

			handler := g.Entry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("entry handler reached by authenticated session")
			}))

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

			if recorder.Code != http.StatusFound {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusFound)
			}
			if got := recorder.Header().Get("Location"); got != tc.want {
				t.Errorf("Location = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEntryFallsThroughAnonymous(t *testing.T) {
	g, sessions := newTestGuard(t)

	sessions.EXPECT().WaitInitialized(gomock.Any()).Return(nil)
	sessions.EXPECT().Identity().Return(nil)

	reached := false
	handler := g.Entry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if !reached {
		t.Error("entry handler not reached by anonymous request")
	}
}

func TestCatchAll(t *testing.T) {
	g, _ := newTestGuard(t)

	recorder := httptest.NewRecorder()
	g.CatchAll().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))

	if recorder.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusFound)
	}
	if got := recorder.Header().Get("Location"); got != PathEntry {
		t.Errorf("Location = %q, want %q", got, PathEntry)
	}
}

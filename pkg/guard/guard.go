// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

// Package guard decides route accessibility and the post-authentication
// landing path. A guard never fails a request with an error: unauthorized
// access is always a redirect.
package guard

import (
	"net/http"
	"net/url"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/roles"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

const (
	PathEntry     = "/"
	PathDashboard = "/dashboard"
	PathUserHome  = "/user-home"
	PathSurvey    = "/survey/{surveyId}"

	// fromParam carries the originally requested location on a
	// redirect-to-entry. It is captured for parity with the upstream
	// client but deliberately never consumed by the login flow.
	fromParam = "from"
)

type Guard struct {
	sessions SessionInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGuard(sessions SessionInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	return &Guard{
		sessions: sessions,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// IsAuthenticated reports whether the session currently holds an identity.
func (g *Guard) IsAuthenticated() bool {
	return g.sessions.Identity() != nil
}

// LandingPath computes the authenticated landing route. The entry redirect
// honors the ADMIN/admin alias on top of the manager tier, diverging from
// roles.IsManagerTier on purpose.
func LandingPath(identity *types.Identity) string {
	if roles.HasAdminRedirectRights(identity) {
		return PathDashboard
	}
	return PathUserHome
}

// Protect gates a route: route decisions are withheld until the first
// auto-login attempt has resolved, then anonymous requests are redirected to
// the public entry path with the requested location captured.
func (g *Guard) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := g.tracer.Start(r.Context(), "guard.Guard.Protect")
		defer span.End()

		if err := g.sessions.WaitInitialized(ctx); err != nil {
			// Client went away while the session was resolving.
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		if !g.IsAuthenticated() {
			g.logger.Debugf("redirecting anonymous request for %s to entry", r.URL.Path)
			target := PathEntry + "?" + url.Values{fromParam: []string{r.URL.Path}}.Encode()
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Entry serves the public entry path: an authenticated session is bounced
// straight to its landing path, everything else falls through to the auth
// flow.
func (g *Guard) Entry(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := g.tracer.Start(r.Context(), "guard.Guard.Entry")
		defer span.End()

		if err := g.sessions.WaitInitialized(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		if identity := g.sessions.Identity(); identity != nil {
			http.Redirect(w, r, LandingPath(identity), http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CatchAll redirects any unknown path back to the entry path.
func (g *Guard) CatchAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, PathEntry, http.StatusFound)
	}
}

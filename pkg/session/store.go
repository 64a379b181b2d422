// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

// Package session owns the single Identity-or-none of the client session,
// plus the loading and initialization flags, and serializes every mutation
// caused by the auth operations.
//
// State machine:
//
//	UNINITIALIZED --autoLogin:success--> AUTHENTICATED (initialized)
//	UNINITIALIZED --autoLogin:failure--> ANONYMOUS     (initialized)
//	ANONYMOUS     --login:success-->     AUTHENTICATED
//	ANONYMOUS     --login:failure-->     ANONYMOUS     (error slot set)
//	AUTHENTICATED --logout-->            ANONYMOUS     (always, logout is locally authoritative)
//	AUTHENTICATED --register:success-->  AUTHENTICATED
package session

import (
	"context"
	"sync"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/authapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/httpclient"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

// Session is an immutable snapshot of the store's state.
type Session struct {
	Identity      *types.Identity
	IsLoading     bool
	IsInitialized bool

	ErrLogin               string
	ErrRegisterNewOrg      string
	ErrRegisterExistingOrg string
}

type Store struct {
	mu sync.Mutex

	identity    *types.Identity
	inflight    int
	initialized bool
	initGate    chan struct{}

	errLogin               string
	errRegisterNewOrg      string
	errRegisterExistingOrg string

	// Sequence-tagged resolutions: a result is discarded when a
	// higher-sequence operation has already been applied, so a slow login
	// can never resurrect a session a later logout has cleared.
	issued  uint64
	applied uint64

	auth     AuthClientInterface
	artifact ArtifactInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewStore(
	auth AuthClientInterface,
	artifact ArtifactInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Store {
	return &Store{
		initGate: make(chan struct{}),
		auth:     auth,
		artifact: artifact,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// begin registers an in-flight auth operation and returns its sequence tag.
func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++
	s.inflight++
	return s.issued
}

// resolve applies fn under the lock unless a higher-sequence operation has
// already completed, in which case the resolution is discarded (last request
// wins). Returns whether fn ran.
func (s *Store) resolve(seq uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight--
	if seq < s.applied {
		s.logger.Debugf("discarding stale auth resolution (seq %d < %d)", seq, s.applied)
		return false
	}

	s.applied = seq
	fn()
	return true
}

// markInitialized flips the one-way initialization flag. It never reverts
// for the life of the process (ResetAuth excepted, which tears the whole
// session down).
func (s *Store) markInitialized() {
	if !s.initialized {
		s.initialized = true
		close(s.initGate)
	}
}

// AutoLogin attempts silent session resumption. Failure is an expected,
// non-exceptional outcome: it is absorbed into the ANONYMOUS state, the
// local session artifact is cleared, and nothing propagates to the caller.
// Either way the store ends initialized and not loading.
func (s *Store) AutoLogin(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "session.Store.AutoLogin")
	defer span.End()

	seq := s.begin()
	identity, err := s.auth.CurrentUser(ctx)

	applied := s.resolve(seq, func() {
		if err != nil {
			s.identity = nil
		} else {
			s.identity = identity
		}
	})

	s.mu.Lock()
	s.markInitialized()
	s.mu.Unlock()

	if err != nil {
		if clearErr := s.artifact.Clear(); clearErr != nil {
			s.logger.Debugf("failed to clear session artifact: %v", clearErr)
		}
		s.logger.Debugf("silent session resumption failed: %v", err)
		return
	}

	if applied && identity != nil {
		s.logger.Security().AuthnSuccess(identity.Username)
	}
}

// Login authenticates with the collaborator. On failure the error slot is
// set from the collaborator's message (then error field, then transport
// text) and Identity is left untouched.
func (s *Store) Login(ctx context.Context, credentials authapi.Credentials) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.Login")
	defer span.End()

	seq := s.begin()

	s.mu.Lock()
	s.errLogin = ""
	s.mu.Unlock()

	identity, err := s.auth.Login(ctx, credentials)

	s.resolve(seq, func() {
		if err != nil {
			s.errLogin = httpclient.ErrorMessage(err)
			return
		}
		s.identity = identity
	})

	if err != nil {
		s.logger.Security().AuthnFailure(credentials.Email)
		return err
	}

	s.logger.Security().AuthnSuccess(identity.Username)
	return nil
}

// Logout is locally authoritative: whatever the collaborator call returns,
// the identity and every error slot are cleared. It cannot fail from the
// caller's perspective.
func (s *Store) Logout(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "session.Store.Logout")
	defer span.End()

	seq := s.begin()

	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Debugf("remote logout failed, clearing local session anyway: %v", err)
	}
	if err := s.artifact.Clear(); err != nil {
		s.logger.Debugf("failed to clear session artifact: %v", err)
	}

	s.resolve(seq, func() {
		s.identity = nil
		s.errLogin = ""
		s.errRegisterNewOrg = ""
		s.errRegisterExistingOrg = ""
	})
}

// RegisterForNewOrg completes signup against a freshly created organization.
// Registration implicitly authenticates.
func (s *Store) RegisterForNewOrg(ctx context.Context, orgID string, registration authapi.Registration) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.RegisterForNewOrg")
	defer span.End()

	seq := s.begin()

	s.mu.Lock()
	s.errRegisterNewOrg = ""
	s.mu.Unlock()

	identity, err := s.auth.RegisterForNewOrg(ctx, orgID, registration)

	s.resolve(seq, func() {
		if err != nil {
			s.errRegisterNewOrg = httpclient.ErrorMessage(err)
			return
		}
		if identity != nil && identity.Username != "" {
			s.identity = identity
		}
	})

	return err
}

// RegisterForExistingOrg joins an existing organization via invitation code.
func (s *Store) RegisterForExistingOrg(ctx context.Context, registration authapi.Registration) error {
	ctx, span := s.tracer.Start(ctx, "session.Store.RegisterForExistingOrg")
	defer span.End()

	seq := s.begin()

	s.mu.Lock()
	s.errRegisterExistingOrg = ""
	s.mu.Unlock()

	identity, err := s.auth.RegisterForExistingOrg(ctx, registration)

	s.resolve(seq, func() {
		if err != nil {
			s.errRegisterExistingOrg = httpclient.ErrorMessage(err)
			return
		}
		if identity != nil && identity.Username != "" {
			s.identity = identity
		}
	})

	return err
}

// ClearAuthErrors resets all three error slots without touching Identity.
// Used when switching between auth-flow views so stale errors don't leak
// across forms.
func (s *Store) ClearAuthErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errLogin = ""
	s.errRegisterNewOrg = ""
	s.errRegisterExistingOrg = ""
}

// ResetAuth tears the session down completely, including the one-way
// initialization flag. Only used on full client teardown.
func (s *Store) ResetAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.errLogin = ""
	s.errRegisterNewOrg = ""
	s.errRegisterExistingOrg = ""
	if s.initialized {
		s.initialized = false
		s.initGate = make(chan struct{})
	}
}

func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Session{
		Identity:               s.identity,
		IsLoading:              s.inflight > 0,
		IsInitialized:          s.initialized,
		ErrLogin:               s.errLogin,
		ErrRegisterNewOrg:      s.errRegisterNewOrg,
		ErrRegisterExistingOrg: s.errRegisterExistingOrg,
	}
}

func (s *Store) Identity() *types.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *Store) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// WaitInitialized blocks until the first auto-login attempt has resolved, so
// no route decision can precede session resolution.
func (s *Store) WaitInitialized(ctx context.Context) error {
	s.mu.Lock()
	gate := s.initGate
	s.mu.Unlock()

	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

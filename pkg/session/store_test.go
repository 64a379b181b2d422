// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/authapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_session.go -source=./interfaces.go -exclude_interfaces=StoreInterface

func newTestStore(t *testing.T) (*Store, *MockAuthClientInterface, *MockArtifactInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := NewMockAuthClientInterface(ctrl)
	artifact := NewMockArtifactInterface(ctrl)

	store := NewStore(auth, artifact, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return store, auth, artifact
}

func TestAutoLoginSuccess(t *testing.T) {
	store, auth, _ := newTestStore(t)

	identity := &types.Identity{Username: "alice", Roles: []string{"TEAM MANAGER"}}
	auth.EXPECT().CurrentUser(gomock.Any()).Return(identity, nil)

	store.AutoLogin(context.Background())

	snap := store.Snapshot()
	if !snap.IsInitialized {
		t.Error("IsInitialized = false after auto-login resolution, want true")
	}
	if snap.IsLoading {
		t.Error("IsLoading = true after auto-login resolution, want false")
	}
	if snap.Identity == nil || snap.Identity.Username != "alice" {
		t.Errorf("Identity = %+v, want alice", snap.Identity)
	}
}

func TestAutoLoginFailure(t *testing.T) {
	store, auth, artifact := newTestStore(t)

	auth.EXPECT().CurrentUser(gomock.Any()).Return(nil, authapi.ErrSessionExpired)
	artifact.EXPECT().Clear().Return(nil)

	store.AutoLogin(context.Background())

	snap := store.Snapshot()
	if !snap.IsInitialized {
		t.Error("IsInitialized = false after failed auto-login, want true")
	}
	if snap.IsLoading {
		t.Error("IsLoading = true after failed auto-login, want false (no stuck loading state)")
	}
	if snap.Identity != nil {
		t.Errorf("Identity = %+v after failed auto-login, want nil", snap.Identity)
	}
	if snap.ErrLogin != "" {
		t.Errorf("ErrLogin = %q after failed auto-login, want empty (expected-absence errors are invisible)", snap.ErrLogin)
	}
}

func TestAutoLoginFailureArtifactClearFails(t *testing.T) {
	store, auth, artifact := newTestStore(t)

	auth.EXPECT().CurrentUser(gomock.Any()).Return(nil, errors.New("network down"))
	artifact.EXPECT().Clear().Return(errors.New("permission denied"))

	store.AutoLogin(context.Background())

	if !store.IsInitialized() {
		t.Error("IsInitialized = false, want true regardless of artifact errors")
	}
}

func TestLoginSuccess(t *testing.T) {
	store, auth, _ := newTestStore(t)

	identity := &types.Identity{Username: "alice", Roles: []string{"TEAM MANAGER"}}
	credentials := authapi.Credentials{Email: "a@b.com", Password: "secret1"}
	auth.EXPECT().Login(gomock.Any(), credentials).Return(identity, nil)

	if err := store.Login(context.Background(), credentials); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	snap := store.Snapshot()
	if snap.Identity == nil {
		t.Fatal("Identity = nil after successful login")
	}
	if len(snap.Identity.Roles) != 1 || snap.Identity.Roles[0] != "TEAM MANAGER" {
		t.Errorf("Identity.Roles = %v, want [TEAM MANAGER]", snap.Identity.Roles)
	}
}

func TestLoginFailureKeepsIdentity(t *testing.T) {
	store, auth, _ := newTestStore(t)

	existing := &types.Identity{Username: "alice", Roles: []string{}}
	auth.EXPECT().CurrentUser(gomock.Any()).Return(existing, nil)
	store.AutoLogin(context.Background())

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("bad credentials"))

	if err := store.Login(context.Background(), authapi.Credentials{Email: "a@b.com", Password: "wrong"}); err == nil {
		t.Fatal("Login() error = nil, want error")
	}

	snap := store.Snapshot()
	if snap.ErrLogin != "bad credentials" {
		t.Errorf("ErrLogin = %q, want %q", snap.ErrLogin, "bad credentials")
	}
	if snap.Identity == nil || snap.Identity.Username != "alice" {
		t.Errorf("Identity = %+v, want preserved alice identity", snap.Identity)
	}
}

func TestLogoutAlwaysLandsAnonymous(t *testing.T) {
	testCases := []struct {
		name      string
		remoteErr error
	}{
		{"remote logout succeeds", nil},
		{"remote logout fails", errors.New("backend unavailable")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, auth, artifact := newTestStore(t)

			auth.EXPECT().CurrentUser(gomock.Any()).Return(&types.Identity{Username: "alice", Roles: []string{}}, nil)
			store.AutoLogin(context.Background())

			auth.EXPECT().Logout(gomock.Any()).Return(tc.remoteErr)
			artifact.EXPECT().Clear().Return(nil)

			store.Logout(context.Background())

			snap := store.Snapshot()
			if snap.Identity != nil {
				t.Errorf("Identity = %+v after logout, want nil", snap.Identity)
			}
			if snap.ErrLogin != "" || snap.ErrRegisterNewOrg != "" || snap.ErrRegisterExistingOrg != "" {
				t.Error("error slots not cleared by logout")
			}
		})
	}
}

func TestRegisterErrorSlotsAreIndependent(t *testing.T) {
	store, auth, _ := newTestStore(t)

	auth.EXPECT().RegisterForNewOrg(gomock.Any(), "org-1", gomock.Any()).Return(nil, errors.New("org signup failed"))
	auth.EXPECT().RegisterForExistingOrg(gomock.Any(), gomock.Any()).Return(nil, errors.New("invite code invalid"))

	_ = store.RegisterForNewOrg(context.Background(), "org-1", authapi.Registration{Username: "bob"})
	_ = store.RegisterForExistingOrg(context.Background(), authapi.Registration{Username: "bob"})

	snap := store.Snapshot()
	if snap.ErrRegisterNewOrg != "org signup failed" {
		t.Errorf("ErrRegisterNewOrg = %q, want %q", snap.ErrRegisterNewOrg, "org signup failed")
	}
	if snap.ErrRegisterExistingOrg != "invite code invalid" {
		t.Errorf("ErrRegisterExistingOrg = %q, want %q", snap.ErrRegisterExistingOrg, "invite code invalid")
	}
	if snap.ErrLogin != "" {
		t.Errorf("ErrLogin = %q, want empty (slots must not clobber each other)", snap.ErrLogin)
	}
}

func TestRegisterImplicitlyAuthenticates(t *testing.T) {
	store, auth, _ := newTestStore(t)

	identity := &types.Identity{Username: "bob", OrganizationID: "org-1", Roles: []string{"ORGANIZATION MANAGER"}}
	auth.EXPECT().RegisterForNewOrg(gomock.Any(), "org-1", gomock.Any()).Return(identity, nil)

	if err := store.RegisterForNewOrg(context.Background(), "org-1", authapi.Registration{Username: "bob"}); err != nil {
		t.Fatalf("RegisterForNewOrg() error = %v", err)
	}

	if got := store.Identity(); got == nil || got.Username != "bob" {
		t.Errorf("Identity = %+v, want bob", got)
	}
}

func TestClearAuthErrorsIdempotent(t *testing.T) {
	store, auth, _ := newTestStore(t)

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("nope"))
	_ = store.Login(context.Background(), authapi.Credentials{Email: "a@b.com", Password: "x"})

	for i := 0; i < 2; i++ {
		store.ClearAuthErrors()
		snap := store.Snapshot()
		if snap.ErrLogin != "" || snap.ErrRegisterNewOrg != "" || snap.ErrRegisterExistingOrg != "" {
			t.Fatalf("error slots not empty after ClearAuthErrors call %d", i+1)
		}
	}
}

// A slow login resolving after a later logout must not resurrect the
// session: resolutions carry sequence tags and the last issued request wins.
func TestLogoutDuringPendingLogin(t *testing.T) {
	store, auth, artifact := newTestStore(t)

	loginStarted := make(chan struct{})
	loginRelease := make(chan struct{})

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, credentials authapi.Credentials) (*types.Identity, error) {
			close(loginStarted)
			<-loginRelease
			return &types.Identity{Username: "alice", Roles: []string{"TEAM MANAGER"}}, nil
		})
	auth.EXPECT().Logout(gomock.Any()).Return(nil)
	artifact.EXPECT().Clear().Return(nil)

	loginDone := make(chan struct{})
	go func() {
		defer close(loginDone)
		_ = store.Login(context.Background(), authapi.Credentials{Email: "a@b.com", Password: "secret1"})
	}()

	<-loginStarted
	store.Logout(context.Background())

	close(loginRelease)
	<-loginDone

	if got := store.Identity(); got != nil {
		t.Errorf("Identity = %+v after logout-then-stale-login, want nil (ANONYMOUS)", got)
	}
}

func TestResetAuth(t *testing.T) {
	store, auth, _ := newTestStore(t)

	auth.EXPECT().CurrentUser(gomock.Any()).Return(&types.Identity{Username: "alice", Roles: []string{}}, nil)
	store.AutoLogin(context.Background())

	store.ResetAuth()

	snap := store.Snapshot()
	if snap.Identity != nil || snap.IsInitialized {
		t.Errorf("Snapshot after ResetAuth = %+v, want uninitialized anonymous state", snap)
	}
}

func TestWaitInitialized(t *testing.T) {
	store, auth, artifact := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.WaitInitialized(ctx); err == nil {
		t.Error("WaitInitialized() = nil on canceled context before initialization, want error")
	}

	auth.EXPECT().CurrentUser(gomock.Any()).Return(nil, errors.New("no session"))
	artifact.EXPECT().Clear().Return(nil)
	store.AutoLogin(context.Background())

	if err := store.WaitInitialized(context.Background()); err != nil {
		t.Errorf("WaitInitialized() error = %v after initialization, want nil", err)
	}
}

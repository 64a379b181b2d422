// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit events on a dedicated "security" facility so
// that authentication activity can be filtered out of the operational stream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnSuccess(principal string) {
	s.l.Info("authn_success", zap.String("event", "authn_success"), zap.String("principal", principal))
}

func (s *SecurityLogger) AuthnFailure(principal string) {
	s.l.Warn("authn_failure", zap.String("event", "authn_failure"), zap.String("principal", principal))
}

func (s *SecurityLogger) AuthzFailure(principal, action string) {
	s.l.Warn("authz_failure", zap.String("event", "authz_failure"), zap.String("principal", principal), zap.String("action", action))
}

func (s *SecurityLogger) SessionExpired(principal string) {
	s.l.Info("session_expired", zap.String("event", "session_expired"), zap.String("principal", principal))
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system_startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system_shutdown", zap.String("event", "system_shutdown"))
}

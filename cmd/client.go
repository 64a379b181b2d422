// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/authapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/config"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/httpclient"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/session"
)

// getSessionStore builds a session store against the configured collaborator
// for the client commands. The collaborator URL resolution order is the
// --api-url flag, then the runtime config document, then the local fallback.
func getSessionStore(ctx context.Context) (*session.Store, error) {
	logger := logging.NewLogger("error")
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor()

	collaboratorURL := apiURL
	if collaboratorURL == "" {
		collaboratorURL = config.ResolveAPIURL(ctx, configDoc, logger)
	}

	transport, err := httpclient.NewClient(collaboratorURL, httpclient.DefaultTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create collaborator transport: %w", err)
	}

	return session.NewStore(
		authapi.NewClient(transport, tracer, monitor, logger),
		session.NewNoopArtifact(),
		tracer,
		monitor,
		logger,
	), nil
}

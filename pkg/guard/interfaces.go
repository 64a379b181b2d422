// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

// SessionInterface is the read-only view of the session store the guard
// needs. The guard never mutates the session.
type SessionInterface interface {
	Identity() *types.Identity
	WaitInitialized(ctx context.Context) error
}

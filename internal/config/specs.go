// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"3000"`

	// ConfigDoc is the path or URL of the runtime config.json document
	// exposing API_URL. When it cannot be loaded the hardcoded local
	// fallback is used.
	ConfigDoc string `envconfig:"config_doc" default:"config.json"`

	// APIURL overrides the config.json resolution entirely when set.
	APIURL string `envconfig:"api_url"`

	RequestTimeout time.Duration `envconfig:"request_timeout" default:"10s"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	// StrictSections flips the dashboard section filter to a
	// least-privilege default for unrecognized roles.
	StrictSections bool `envconfig:"strict_sections" default:"false"`

	// SessionArtifact is the on-disk session marker cleared on logout and
	// failed auto-login.
	SessionArtifact string `envconfig:"session_artifact" default:".hsurvey-session"`
}

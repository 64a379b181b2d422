// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/authapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/config"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/httpclient"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring/prometheus"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/surveyapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/authflow"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/dashboard"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/guard"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/session"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("hsurvey-front", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	collaboratorURL := specs.APIURL
	if collaboratorURL == "" {
		collaboratorURL = config.ResolveAPIURL(context.Background(), specs.ConfigDoc, logger)
	}

	transport, err := httpclient.NewClient(collaboratorURL, specs.RequestTimeout, logger)
	if err != nil {
		return fmt.Errorf("failed to create collaborator transport: %v", err)
	}

	authClient := authapi.NewClient(transport, tracer, monitor, logger)
	surveyClient := surveyapi.NewClient(transport, tracer, monitor, logger)

	sessions := session.NewStore(
		authClient,
		session.NewFileArtifact(specs.SessionArtifact),
		tracer,
		monitor,
		logger,
	)

	flow := authflow.NewFlow(sessions, surveyClient, tracer, monitor, logger)
	composer := dashboard.NewComposer(surveyClient, specs.StrictSections, tracer, monitor, logger)
	routeGuard := guard.NewGuard(sessions, tracer, monitor, logger)

	// Boot-time silent auto-login. Route decisions block on the
	// initialization gate until this resolves, success or failure.
	go sessions.AutoLogin(context.Background())

	router := web.NewRouter(
		sessions,
		routeGuard,
		flow,
		composer,
		surveyClient,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

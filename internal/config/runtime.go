// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
)

// FallbackAPIURL is used for local development when the runtime config
// document cannot be loaded.
const FallbackAPIURL = "http://localhost:8080/api"

// RuntimeConfig mirrors the config.json document deployed next to the app.
type RuntimeConfig struct {
	APIURL string `json:"API_URL"`
}

// ResolveAPIURL loads the collaborator base URL from the config.json document
// at docRef, which is either a filesystem path or an http(s) URL. Any failure
// degrades to FallbackAPIURL; a missing document is not an error condition.
func ResolveAPIURL(ctx context.Context, docRef string, logger logging.LoggerInterface) string {
	doc, err := loadRuntimeConfig(ctx, docRef)
	if err != nil || doc.APIURL == "" {
		logger.Warnf("failed to load %s, using fallback URL for local development: %v", docRef, err)
		return FallbackAPIURL
	}
	return doc.APIURL
}

func loadRuntimeConfig(ctx context.Context, docRef string) (*RuntimeConfig, error) {
	var data []byte
	var err error

	if strings.HasPrefix(docRef, "http://") || strings.HasPrefix(docRef, "https://") {
		data, err = fetchRuntimeConfig(ctx, docRef)
	} else {
		data, err = os.ReadFile(docRef)
	}
	if err != nil {
		return nil, err
	}

	doc := new(RuntimeConfig)
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse runtime config: %w", err)
	}

	return doc, nil
}

func fetchRuntimeConfig(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load config document: status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

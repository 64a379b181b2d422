// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
)

func TestResolveAPIURLFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"API_URL": "https://api.example.com/api"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	got := ResolveAPIURL(context.Background(), path, logging.NewNoopLogger())
	if got != "https://api.example.com/api" {
		t.Errorf("ResolveAPIURL() = %q, want %q", got, "https://api.example.com/api")
	}
}

func TestResolveAPIURLFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"API_URL": "https://api.example.com/api"}`))
	}))
	defer srv.Close()

	got := ResolveAPIURL(context.Background(), srv.URL+"/config.json", logging.NewNoopLogger())
	if got != "https://api.example.com/api" {
		t.Errorf("ResolveAPIURL() = %q, want %q", got, "https://api.example.com/api")
	}
}

func TestResolveAPIURLFallback(t *testing.T) {
	testCases := []struct {
		name   string
		docRef string
	}{
		{"missing file", "does-not-exist.json"},
		{"unreachable url", "http://127.0.0.1:1/config.json"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveAPIURL(context.Background(), tc.docRef, logging.NewNoopLogger())
			if got != FallbackAPIURL {
				t.Errorf("ResolveAPIURL() = %q, want fallback %q", got, FallbackAPIURL)
			}
		})
	}
}

func TestResolveAPIURLEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatal(err)
	}

	if got := ResolveAPIURL(context.Background(), path, logging.NewNoopLogger()); got != FallbackAPIURL {
		t.Errorf("ResolveAPIURL() = %q, want fallback %q", got, FallbackAPIURL)
	}
}

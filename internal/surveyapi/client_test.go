// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package surveyapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/httpclient"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package surveyapi -destination ./mock_surveyapi.go -source=./interfaces.go

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	http, err := httpclient.NewClient(server.URL, 0, logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	return NewClient(http, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestRegisterOrganizationAcceptsBothIDFields(t *testing.T) {
	testCases := []struct {
		name string
		body map[string]string
		want string
	}{
		{"plain id", map[string]string{"id": "org-1", "name": "Acme"}, "org-1"},
		{"legacy underscore id", map[string]string{"_id": "org-2", "name": "Acme"}, "org-2"},
		{"plain id wins over legacy", map[string]string{"id": "org-1", "_id": "org-9", "name": "Acme"}, "org-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/organizations/register" || r.Method != http.MethodPost {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				_ = json.NewEncoder(w).Encode(tc.body)
			}))

			org, err := client.RegisterOrganization(context.Background(), OrgRegistration{OrganizationName: "Acme"})
			if err != nil {
				t.Fatalf("RegisterOrganization() error = %v", err)
			}
			if org.ID != tc.want {
				t.Errorf("ID = %q, want %q", org.ID, tc.want)
			}
		})
	}
}

func TestListOptionsByQuestionPath(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/options/byQuestion/q-1" {
			t.Errorf("path = %q, want /options/byQuestion/q-1", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]map[string]string{{"id": "o-1", "optionText": "Great"}})
	}))

	options, err := client.ListOptionsByQuestion(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("ListOptionsByQuestion() error = %v", err)
	}
	if len(options) != 1 || options[0].Text != "Great" {
		t.Errorf("options = %+v, want one option with text Great", options)
	}
}

func TestListSurveyResponsesPath(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/survey-response" {
			t.Errorf("path = %q, want /survey-response", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]map[string]string{{"id": "r-1", "surveyId": "s-1"}})
	}))

	responses, err := client.ListSurveyResponses(context.Background())
	if err != nil {
		t.Fatalf("ListSurveyResponses() error = %v", err)
	}
	if len(responses) != 1 || responses[0].SurveyID != "s-1" {
		t.Errorf("responses = %+v, want one response for s-1", responses)
	}
}

func TestGetSurvey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/surveys/s-1" {
			t.Errorf("path = %q, want /surveys/s-1", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "s-1",
			"title":  "Onboarding",
			"status": "ACTIVE",
			"questions": []map[string]any{
				{"id": "q-1", "questionText": "How was week one?"},
			},
		})
	}))

	survey, err := client.GetSurvey(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("GetSurvey() error = %v", err)
	}
	if survey.Title != "Onboarding" || len(survey.Questions) != 1 {
		t.Errorf("survey = %+v, want Onboarding with one question", survey)
	}
	if survey.Questions[0].Text != "How was week one?" {
		t.Errorf("question text = %q, want the questionText field mapped", survey.Questions[0].Text)
	}
}

// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx collaborator response. Message and Reason carry the
// body's "message" and "error" fields when present.
type APIError struct {
	StatusCode int
	Message    string
	Reason     string
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Reason != "":
		return e.Reason
	}
	return fmt.Sprintf("collaborator returned status %d", e.StatusCode)
}

func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Reason = payload.Error
	}

	return apiErr
}

// ErrorMessage extracts the human-readable error string for an auth error
// slot: the collaborator's message field, then its error field, then the
// transport-level error text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

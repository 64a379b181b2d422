// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package types

// Identity is the authenticated principal as resolved from the auth
// collaborator. Roles keeps the insertion order received from the server and
// is never nil once an Identity exists.
type Identity struct {
	Username       string   `json:"username"`
	Email          string   `json:"email,omitempty"`
	OrganizationID string   `json:"organizationId"`
	Roles          []string `json:"roles"`
	DepartmentID   string   `json:"departmentId,omitempty"`
	TeamID         string   `json:"teamId,omitempty"`
}

type Organization struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type,omitempty"`
	InvitationCode string `json:"invitationCode,omitempty"`
}

type Department struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OrganizationID string `json:"organizationId,omitempty"`
}

type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId,omitempty"`
}

type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles,omitempty"`
	DepartmentID string   `json:"departmentId,omitempty"`
	TeamID       string   `json:"teamId,omitempty"`
}

type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions,omitempty"`
}

type Permission struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Survey struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Locked      bool       `json:"locked,omitempty"`
	Questions   []Question `json:"questions,omitempty"`
}

// SurveyStatusActive is the status value counted by the dashboard's
// "active surveys" statistic.
const SurveyStatusActive = "ACTIVE"

type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"questionText"`
	Type    string   `json:"questionType,omitempty"`
	Locked  bool     `json:"locked,omitempty"`
	Options []Option `json:"options,omitempty"`
}

type Option struct {
	ID         string `json:"id"`
	QuestionID string `json:"questionId,omitempty"`
	Text       string `json:"optionText"`
	Locked     bool   `json:"locked,omitempty"`
}

type SurveyResponse struct {
	ID       string `json:"id"`
	SurveyID string `json:"surveyId"`
	UserID   string `json:"userId,omitempty"`
}

// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package authflow

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LoginForm only checks presence: malformed addresses are the collaborator's
// problem at login time.
type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupForm registers the first user of a freshly created organization.
type SignupForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,survey_email"`
	Password string `json:"password" validate:"required,min=6"`
}

// JoinForm registers a user into an existing organization by invitation code.
type JoinForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,survey_email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	InvitationCode  string `json:"invitationCode" validate:"required"`
}

// OrganizationForm creates a new organization ahead of its first signup.
type OrganizationForm struct {
	OrganizationName string `json:"organizationName" validate:"required"`
	Type             string `json:"type"`
}

// FieldErrors maps a form field to its inline validation message. Empty means
// the form may be submitted.
type FieldErrors map[string]string

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// fieldMessages translates a failed (field, tag) pair into the inline message
// shown next to the field.
var fieldMessages = map[string]map[string]string{
	"name":  {"required": "Name is required"},
	"email": {"required": "Email is required", "survey_email": "Invalid email address"},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
	"confirmPassword": {
		"required": "Please confirm your password",
		"eqfield":  "Passwords don't match",
	},
	"invitationCode":   {"required": "Invitation code is required"},
	"organizationName": {"required": "Organization name is required"},
}

func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("survey_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return validate
}

// checkForm runs struct validation and translates failures into inline
// per-field messages. Only the first failing rule per field is reported.
func checkForm(validate *validator.Validate, form any) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"form": err.Error()}
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		if _, seen := fieldErrors[field]; seen {
			continue
		}
		if message, known := fieldMessages[field][fieldError.Tag()]; known {
			fieldErrors[field] = message
		} else {
			fieldErrors[field] = fieldError.Error()
		}
	}
	return fieldErrors
}

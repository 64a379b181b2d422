// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

// Package dashboard composes role-scoped dashboard views: which sections an
// identity may see, which collections back them, and the headline statistics
// derived from those collections.
package dashboard

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/monitoring"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/roles"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/tracing"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/types"
)

// ViewData holds the dashboard collections. A collection a role does not load
// stays at its zero value; a collection whose load failed keeps its
// last-known state.
type ViewData struct {
	Organization    *types.Organization    `json:"organization,omitempty"`
	Departments     []types.Department     `json:"departments,omitempty"`
	Teams           []types.Team           `json:"teams,omitempty"`
	Users           []types.User           `json:"users,omitempty"`
	Roles           []types.Role           `json:"roles,omitempty"`
	Permissions     []types.Permission     `json:"permissions,omitempty"`
	Surveys         []types.Survey         `json:"surveys,omitempty"`
	Questions       []types.Question       `json:"questions,omitempty"`
	SurveyResponses []types.SurveyResponse `json:"surveyResponses,omitempty"`
}

// Stat is a headline dashboard card.
type Stat struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// View is the fully composed dashboard payload for one identity.
type View struct {
	Sections      []string  `json:"sections"`
	ActiveSection string    `json:"activeSection"`
	CanonicalRole string    `json:"canonicalRole"`
	Stats         []Stat    `json:"stats"`
	Data          *ViewData `json:"data"`
}

type Composer struct {
	data   DataClientInterface
	strict bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewComposer(data DataClientInterface, strict bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Composer {
	return &Composer{
		data:    data,
		strict:  strict,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Sections returns the visible section set for an identity.
func (c *Composer) Sections(identity *types.Identity) []string {
	return sectionsFor(identity, c.strict)
}

// ResolveActive validates a requested active section against the identity's
// allowed set.
func (c *Composer) ResolveActive(identity *types.Identity, active string) string {
	return resolveActive(identity, active, c.strict)
}

// Load fetches the role-dependent collection set concurrently. Every load
// absorbs and logs its own failure so that one unavailable collection never
// blocks or rolls back the others.
func (c *Composer) Load(ctx context.Context, identity *types.Identity) *ViewData {
	ctx, span := c.tracer.Start(ctx, "dashboard.Composer.Load")
	defer span.End()

	data := new(ViewData)

	g, ctx := errgroup.WithContext(ctx)

	// Common set, loaded for every role.
	g.Go(c.absorb("organization", func() error {
		if identity == nil || identity.OrganizationID == "" {
			return nil
		}
		organization, err := c.data.GetOrganization(ctx, identity.OrganizationID)
		if err != nil {
			return err
		}
		data.Organization = organization
		return nil
	}))
	g.Go(c.absorb("surveys", func() error {
		surveys, err := c.data.ListSurveys(ctx)
		if err != nil {
			return err
		}
		data.Surveys = surveys
		return nil
	}))
	g.Go(c.absorb("questions", func() error {
		questions, err := c.data.ListQuestions(ctx)
		if err != nil {
			return err
		}
		data.Questions = questions
		return nil
	}))
	g.Go(c.absorb("survey responses", func() error {
		responses, err := c.data.ListSurveyResponses(ctx)
		if err != nil {
			return err
		}
		data.SurveyResponses = responses
		return nil
	}))

	loadDepartments := c.absorb("departments", func() error {
		departments, err := c.data.ListDepartments(ctx)
		if err != nil {
			return err
		}
		data.Departments = departments
		return nil
	})
	loadTeams := c.absorb("teams", func() error {
		teams, err := c.data.ListTeams(ctx)
		if err != nil {
			return err
		}
		data.Teams = teams
		return nil
	})
	loadUsers := c.absorb("users", func() error {
		users, err := c.data.ListUsers(ctx)
		if err != nil {
			return err
		}
		data.Users = users
		return nil
	})

	switch {
	case roles.IsDepartmentManager(identity):
		g.Go(loadDepartments)
		g.Go(loadTeams)
		g.Go(loadUsers)
	case roles.IsTeamManager(identity):
		g.Go(loadTeams)
		g.Go(loadUsers)
	default:
		g.Go(loadDepartments)
		g.Go(loadTeams)
		g.Go(loadUsers)
		g.Go(c.absorb("roles", func() error {
			roleList, err := c.data.ListRoles(ctx)
			if err != nil {
				return err
			}
			data.Roles = roleList
			return nil
		}))
		g.Go(c.absorb("permissions", func() error {
			permissions, err := c.data.ListPermissions(ctx)
			if err != nil {
				return err
			}
			data.Permissions = permissions
			return nil
		}))
	}

	// absorb never lets an error escape, so Wait only synchronizes.
	_ = g.Wait()

	return data
}

// absorb wraps a load so its failure is logged and swallowed.
func (c *Composer) absorb(collection string, load func() error) func() error {
	return func() error {
		if err := load(); err != nil {
			c.logger.Errorf("failed to load %s: %v", collection, err)
		}
		return nil
	}
}

// Compose assembles the full dashboard view for an identity.
func (c *Composer) Compose(ctx context.Context, identity *types.Identity, active string) *View {
	ctx, span := c.tracer.Start(ctx, "dashboard.Composer.Compose")
	defer span.End()

	data := c.Load(ctx, identity)

	return &View{
		Sections:      c.Sections(identity),
		ActiveSection: c.ResolveActive(identity, active),
		CanonicalRole: roles.CanonicalRole(identity),
		Stats:         statsFor(identity, data),
		Data:          data,
	}
}

// statsFor derives the headline cards from the loaded collections. The card
// set mirrors the role tiers: restricted tiers see only the collections they
// load.
func statsFor(identity *types.Identity, data *ViewData) []Stat {
	organizationName := "Loading..."
	if data.Organization != nil {
		organizationName = data.Organization.Name
	}

	activeSurveys := 0
	for _, survey := range data.Surveys {
		if survey.Status == types.SurveyStatusActive {
			activeSurveys++
		}
	}

	organization := Stat{Title: "Organization", Value: organizationName, Description: "Your organization"}
	departments := Stat{Title: "Departments", Value: strconv.Itoa(len(data.Departments)), Description: "In your organization"}
	teams := Stat{Title: "Teams", Value: strconv.Itoa(len(data.Teams)), Description: "Active teams"}
	totalUsers := Stat{Title: "Total Users", Value: strconv.Itoa(len(data.Users)), Description: "In your organization"}
	surveys := Stat{Title: "Active Surveys", Value: strconv.Itoa(activeSurveys), Description: "Currently running"}
	responses := Stat{Title: "Survey Responses", Value: strconv.Itoa(len(data.SurveyResponses)), Description: "Total submissions"}

	switch {
	case roles.IsDepartmentManager(identity):
		return []Stat{organization, departments, teams, surveys, responses}
	case roles.IsTeamManager(identity):
		return []Stat{organization, teams, surveys, responses}
	default:
		return []Stat{organization, departments, teams, totalUsers, surveys, responses}
	}
}

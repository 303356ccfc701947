package webapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/mergington/signupd/pkg/actdb/model"
	"github.com/mergington/signupd/pkg/actdb/stor"
)

type ActivitiesController struct {
	activityStor stor.ActivityStor
	seed         []model.Activity
}

func NewActivitiesController(activityStor stor.ActivityStor, seed []model.Activity) *ActivitiesController {
	return &ActivitiesController{activityStor: activityStor, seed: seed}
}

// ActivityDetails is the wire representation of one activity in the
// GET /activities response. The roster is a plain list of emails.
type ActivityDetails struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (c *ActivitiesController) GetActivities(ctx echo.Context) error {
	activities, err := c.activityStor.ListActivities()
	if err != nil {
		return err
	}

	resp := make(map[string]ActivityDetails, len(activities))
	for _, activity := range activities {
		resp[activity.Name] = ActivityDetails{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    activity.ParticipantEmails(),
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *ActivitiesController) Signup(ctx echo.Context) error {
	name := activityNameParam(ctx)

	email := ctx.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	if _, err := c.activityStor.Signup(name, email); err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (c *ActivitiesController) Unregister(ctx echo.Context) error {
	name := activityNameParam(ctx)

	email := ctx.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	if _, err := c.activityStor.Unregister(name, email); err != nil {
		return asHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// Reset restores the registry to its seeded catalog. It lives on the
// internal route group; test harnesses use it for isolation between
// runs.
func (c *ActivitiesController) Reset(ctx echo.Context) error {
	if err := c.activityStor.Reset(c.seed); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Activities reset"})
}

// activityNameParam returns the :activity_name path param. Echo hands
// back the raw path segment, so names with spaces or other encoded
// characters need a PathUnescape before lookup.
func activityNameParam(ctx echo.Context) string {
	raw := ctx.Param("activity_name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return name
}

func asHTTPError(err error) error {
	switch {
	case errors.Is(err, stor.ErrActivityNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
	case errors.Is(err, stor.ErrAlreadyRegistered):
		return echo.NewHTTPError(http.StatusBadRequest, "Student is already signed up")
	case errors.Is(err, stor.ErrNotRegistered):
		return echo.NewHTTPError(http.StatusNotFound, "Student is not registered for this activity")
	case errors.Is(err, stor.ErrActivityFull):
		return echo.NewHTTPError(http.StatusBadRequest, "Activity is full")
	default:
		return err
	}
}

package cmd

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mergington/signupd/pkg/actdb/model"
	"github.com/mergington/signupd/pkg/actdb/stor"
	"github.com/mergington/signupd/pkg/signupd/webapi"
)

type RouteOpts struct {
	activityStor stor.ActivityStor
	seed         []model.Activity
	staticDir    string
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	activitiesController := webapi.NewActivitiesController(opts.activityStor, opts.seed)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})
	e.Static("/static", opts.staticDir)

	e.GET("/activities", activitiesController.GetActivities)
	e.POST("/activities/:activity_name/signup", activitiesController.Signup)
	e.DELETE("/activities/:activity_name/unregister", activitiesController.Unregister)

	setupInternalRoutes(e, activitiesController)
}

func setupInternalRoutes(e *echo.Echo, activitiesController *webapi.ActivitiesController) {
	g := e.Group("/api")

	g.POST("/reset", activitiesController.Reset)
}

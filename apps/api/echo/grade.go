package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/grade"
)

type gradeApi struct {
	svc      grade.ServiceInterface
	validate *validator.Validate
}

func registerGradeAPI(g *echo.Group, svc grade.ServiceInterface, validate *validator.Validate) {
	api := gradeApi{svc: svc, validate: validate}

	gg := g.Group("/grades")
	gg.GET("", api.query)
	gg.POST("", api.upsert)
}

// Handlers

func (api *gradeApi) upsert(ctx echo.Context) error {
	var data grade.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	g, err := api.svc.Upsert(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "upserting grade")
	}
	return ctx.JSON(http.StatusOK, g)
}

// query replies with a two-level studentId -> assignmentId -> grade mapping
// covering all assignments of the requested grade and section.
func (api *gradeApi) query(ctx echo.Context) error {
	nested, err := api.svc.QueryNested(ctx.Request().Context(), ctx.QueryParam("grade"), ctx.QueryParam("section"))
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	return ctx.JSON(http.StatusOK, nested)
}

package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/user"
)

type userApi struct {
	svc      user.ServiceInterface
	validate *validator.Validate
}

func registerUserAPI(g *echo.Group, svc user.ServiceInterface, validate *validator.Validate) {
	api := userApi{svc: svc, validate: validate}

	g.GET("/teachers", api.queryTeachers)
	g.GET("/students", api.queryStudents)
	g.POST("/users", api.create) // one-off seed endpoint
}

// Handlers

func (api *userApi) create(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userApi) queryTeachers(ctx echo.Context) error {
	return api.queryByRole(ctx, user.RoleTeacher)
}

func (api *userApi) queryStudents(ctx echo.Context) error {
	return api.queryByRole(ctx, user.RoleStudent)
}

func (api *userApi) queryByRole(ctx echo.Context, role string) error {
	users, err := api.svc.QueryByRole(ctx.Request().Context(), role)
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	if users == nil {
		users = []user.User{}
	}
	return ctx.JSON(http.StatusOK, users)
}

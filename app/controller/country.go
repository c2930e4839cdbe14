package controller

import (
	"net/http"

	"github.com/vibast-solutions/ms-go-user/app/country"

	"github.com/labstack/echo/v4"
)

type CountryController struct {
	validator *country.Validator
}

func NewCountryController(validator *country.Validator) *CountryController {
	return &CountryController{validator: validator}
}

func (c *CountryController) GetAll(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.validator.All())
}

package controllers

import (
	"errors"

	"github.com/SpideeCode/uberPharma/pkg/resp"
	"github.com/SpideeCode/uberPharma/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fail maps the service error taxonomy onto HTTP statuses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrInvalidStatus):
		resp.Unprocessable(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidStock),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

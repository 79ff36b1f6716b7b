package handlers

import (
	"net/http"

	request "panaderia_api/internal/adapter/http/dto/request"
	"panaderia_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindError builds the 400 body for a failed ShouldBindJSON, listing the
// offending fields when the failure came from validation.
func bindError(code, message string, err error) *pkg.AppError {
	appErr := pkg.NewDomainError(code, message, err, http.StatusBadRequest)
	if details := request.ValidationDetails(err); len(details) > 0 {
		appErr = appErr.WithDetails(details)
	}
	return appErr
}

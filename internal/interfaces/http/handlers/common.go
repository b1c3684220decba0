// Package handlers implements the HTTP endpoint handlers for the screening
// API.  All responses use the common.APIResponse envelope; domain errors are
// mapped to HTTP status codes through their error code.
package handlers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"github.com/sentineldata/riskintel/pkg/errors"
	"github.com/sentineldata/riskintel/pkg/types/common"
)

// respondError writes the error envelope for err, using the AppError code's
// HTTP mapping when available and 500 otherwise.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	message := "internal error"
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		message = appErr.Message
	}
	c.JSON(code.HTTPStatus(), common.NewErrorResponse(string(code), message))
}

// respondOK writes a success envelope with the given payload.
func respondOK[T any](c *gin.Context, status int, data T) {
	c.JSON(status, common.NewSuccessResponse(data))
}

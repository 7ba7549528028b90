package handler

import (
	"github.com/labstack/echo/v4"

	errs "examdesk/internal/errors"
)

// respondError translates a service error into the JSON error body. Status
// comes from the error taxonomy, the message from the error itself.
func respondError(c echo.Context, err error) error {
	he := errs.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, errs.ErrorResponse{Message: he.Message})
}

// messageResponse is the `{message}` success body shared by most endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

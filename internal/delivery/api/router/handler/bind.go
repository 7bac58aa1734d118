package handler

import (
	"streamsync/internal/delivery/api/response"
	"streamsync/internal/delivery/api/validator"
	domainerrors "streamsync/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindRequest decodes and validates req. When ok is false the 400 response has already been
// written and err is what the handler should return.
func bindRequest(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, domainerrors.ErrInvalidRequest.ErrorCode(), "Request body could not be decoded")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validator.Details(err),
		)
	}

	return true, nil
}

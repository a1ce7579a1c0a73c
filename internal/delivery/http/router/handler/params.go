package handler

import (
	"net/url"
	"strings"

	"lowkey/internal/delivery/http/response"
	"lowkey/internal/delivery/http/validator"
	domainerrors "lowkey/internal/domain/errors"
	"lowkey/internal/errors"

	"github.com/labstack/echo/v4"
)

// pathParam returns an unescaped, trimmed path parameter.
func pathParam(c echo.Context, name string) (string, error) {
	raw, err := url.PathUnescape(c.Param(name))
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed " + name))
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " is required"))
	}

	return value, nil
}

// bindingError reports which query parameter failed to bind.
func bindingError(c echo.Context, err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid query parameters",
			map[string]string{bindErr.Field: "invalid or missing"})
	}

	return response.BadRequest(c, "INVALID_INPUT", "Invalid query parameters")
}

// validationError reports the failed validation rule of each field.
func validationError(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
}

package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"merchant-dashboard/internal/errors"
	"merchant-dashboard/internal/validation"
)

// bind decodes the request body into req and validates it. When it returns
// false the error response has been written and err must be returned as is.
func bind(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if fields := validation.GetValidator().FieldErrors(req); fields != nil {
		return false, SendValidationError(c, fields)
	}
	return true, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getTimeParam parses an RFC3339 or YYYY-MM-DD query parameter
func getTimeParam(c echo.Context, name string) (*time.Time, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, param); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s: must be RFC3339 or YYYY-MM-DD", name)
}

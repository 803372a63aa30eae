package httpserver

import (
	"errors"
	"fmt"
	"strconv"

	"addressbook/errs"

	"github.com/labstack/echo/v4"
)

const (
	successMessage   = "OK"
	defaultErrorCode = "100500"
)

type APIResponse struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Result  interface{}       `json:"result,omitempty"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
	Info    string            `json:"info,omitempty"`
}

func writeSuccess(c echo.Context, status int, result interface{}) error {
	return writeMessage(c, status, successMessage, result)
}

func writeMessage(c echo.Context, status int, message string, result interface{}) error {
	return c.JSON(status, APIResponse{
		Success: true,
		Code:    strconv.Itoa(status),
		Message: message,
		Result:  result,
	})
}

func writeList(c echo.Context, status int, data interface{}, count int) error {
	return writeSuccess(c, status, map[string]interface{}{
		"data":  data,
		"count": count,
	})
}

func writeError(c echo.Context, status int, message, info string, err error) error {
	return c.JSON(status, APIResponse{
		Success: false,
		Code:    errorCode(err, status),
		Message: message,
		Errors:  errs.ErrorFields(err),
		Info:    info,
	})
}

func errorCode(err error, status int) string {
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case errs.EINVALID:
			return "100010"
		case errs.ENOTFOUND:
			return "100404"
		case errs.ECONFLICT:
			return "100409"
		case errs.ECANCELED:
			return "100499"
		case errs.EUNAVAILABLE:
			return "100503"
		case errs.EINTERNAL, errs.EMISCONFIGURED:
			return defaultErrorCode
		}
	}

	if status != 0 {
		return fmt.Sprintf("100%03d", status)
	}
	return defaultErrorCode
}

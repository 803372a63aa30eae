package httpserver

import (
	"addressbook/contact"
	"addressbook/errs"

	"github.com/labstack/echo/v4"
)

// bindPayload decodes the JSON body only; path and query values never leak into the payload.
// A body echo cannot decode, including one sent without a JSON content type, is invalid input.
func bindPayload(c echo.Context) (contact.Payload, error) {
	var p contact.Payload
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, &p); err != nil {
		return p, errs.Wrap(errs.EINVALID, err, "invalid JSON in request body")
	}
	return p, nil
}

func contactID(c echo.Context) (int64, error) {
	return contact.ParseID(c.Param("id"))
}

package contact

import (
	"strconv"
	"strings"
	"time"

	"addressbook/errs"
)

var (
	ErrInvalidID          = errs.Errorf(errs.EINVALID, "invalid contact id")
	ErrNothingToUpdate    = errs.Errorf(errs.EINVALID, "no fields to update")
	ErrContactNotFound    = errs.Errorf(errs.ENOTFOUND, "contact not found")
	ErrEmailAlreadyExists = errs.Errorf(errs.ECONFLICT, "a contact with this email already exists")
	ErrDeleteFailed       = errs.Errorf(errs.EINTERNAL, "unexpected delete failure")
)

type Contact struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Field names a mutable contact attribute. The set below is the complete
// allow-list of attributes a caller may create or update.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldPhone     Field = "phone"
	FieldEmail     Field = "email"
)

// Fields holds validated, trimmed values keyed by attribute.
type Fields map[Field]string

func (f Fields) Get(name Field) (string, bool) {
	v, ok := f[name]
	return v, ok
}

// Contact builds a contact from a complete set of fields.
func (f Fields) Contact() Contact {
	return Contact{
		FirstName: f[FieldFirstName],
		LastName:  f[FieldLastName],
		Phone:     f[FieldPhone],
		Email:     f[FieldEmail],
	}
}

// Payload is the raw input of a create or update request. A nil field was
// not supplied by the caller.
type Payload struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// ParseID converts a path parameter into a contact id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

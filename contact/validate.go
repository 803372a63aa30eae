package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"addressbook/errs"

	"github.com/go-playground/validator/v10"
)

// Mode selects which fields are required.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)

// rules are checked in this order, which is also the order of reported errors.
var rules = []struct {
	field Field
	tag   string
}{
	{FieldFirstName, "required,min=2,max=50"},
	{FieldLastName, "required,min=2,max=50"},
	{FieldPhone, "required,max=20,phone"},
	{FieldEmail, "required,max=100,email"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", validatePhone)
	return v
}

func validatePhone(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return phonePattern.MatchString(fl.Field().String())
}

// Validate checks a payload and returns the trimmed values of the supplied
// fields. Every offending field is reported in a single *errs.Error.
func Validate(p Payload, mode Mode) (Fields, error) {
	supplied := p.values()
	if mode == ModeUpdate && len(supplied) == 0 {
		return nil, ErrNothingToUpdate
	}

	out := make(Fields, len(supplied))
	var failures []errs.FieldError
	for _, r := range rules {
		value, ok := supplied[r.field]
		if !ok {
			if mode == ModeCreate {
				failures = append(failures, errs.FieldError{
					Field:   string(r.field),
					Message: string(r.field) + " is required",
				})
			}
			continue
		}

		if err := validate.Var(value, r.tag); err != nil {
			failures = append(failures, errs.FieldError{
				Field:   string(r.field),
				Message: fieldMessage(r.field, err),
			})
			continue
		}
		out[r.field] = value
	}

	if len(failures) > 0 {
		return nil, errs.Invalid("invalid contact data", failures...)
	}
	return out, nil
}

func (p Payload) values() map[Field]string {
	values := make(map[Field]string, 4)
	set := func(f Field, v *string) {
		if v != nil {
			values[f] = strings.TrimSpace(*v)
		}
	}
	set(FieldFirstName, p.FirstName)
	set(FieldLastName, p.LastName)
	set(FieldPhone, p.Phone)
	set(FieldEmail, p.Email)
	return values
}

func fieldMessage(f Field, err error) string {
	name := string(f)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return name + " is invalid"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min":
		return name + " must be at least " + fe.Param() + " characters"
	case "max":
		return name + " must be at most " + fe.Param() + " characters"
	case "email":
		return name + " must be a valid email address"
	case "phone":
		return name + " must be a valid phone number"
	}
	return name + " is invalid"
}

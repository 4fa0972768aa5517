package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form field names shared by the page markup, the relay template and the
// self-hosted relay.
const (
	FieldName    = "from_name"
	FieldEmail   = "from_email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// FieldNames lists the four required fields in form order.
var FieldNames = []string{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Form is a handle on the contact form element.
type Form interface {
	// Values returns the current field values keyed by field name.
	Values() map[string]string
	// Reset clears every field.
	Reset()
}

// Submission is the typed view of a form's values.
type Submission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

// FromValues builds a Submission from raw field values.
func FromValues(values map[string]string) Submission {
	return Submission{
		Name:    strings.TrimSpace(values[FieldName]),
		Email:   strings.TrimSpace(values[FieldEmail]),
		Subject: strings.TrimSpace(values[FieldSubject]),
		Message: strings.TrimSpace(values[FieldMessage]),
	}
}

// Values returns the submission keyed by form field name.
func (s Submission) Values() map[string]string {
	return map[string]string{
		FieldName:    s.Name,
		FieldEmail:   s.Email,
		FieldSubject: s.Subject,
		FieldMessage: s.Message,
	}
}

var validate = validator.New()

// Validate mirrors the browser's required/email checks.
func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

// MapForm is an in-memory Form.
type MapForm map[string]string

// Values implements Form.
func (f MapForm) Values() map[string]string {
	out := make(map[string]string, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Reset implements Form.
func (f MapForm) Reset() {
	for k := range f {
		f[k] = ""
	}
}

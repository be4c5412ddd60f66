package validators

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// PhoneTag accepts 9 to 11 digits with an optional leading '+'.
const PhoneTag = "phone"

var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,11}$`)

func isPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

var registerOnce sync.Once

// Register installs the custom tags on gin's validator engine. Must run
// before any request binds a struct that uses them.
func Register() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation(PhoneTag, isPhone)
		}
	})
}

// Struct runs the `binding` tags on s outside of a request.
func Struct(s any) error {
	Register()
	return Business(binding.Validator.ValidateStruct(s))
}

var fieldCodes = map[string]string{
	"Email":  "invalid_email",
	"Phone":  "invalid_phone",
	"Gender": "invalid_gender",
}

// Business turns a binding or validation error into a business error. A
// missing or too short field stays invalid_request; a malformed contact
// field gets its own code.
func Business(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return httperr.ErrBusiness("invalid_request")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required", "min", "max":
		return httperr.ErrBusiness("invalid_request")
	}
	if code, ok := fieldCodes[fe.Field()]; ok {
		return httperr.ErrBusiness(code)
	}
	return httperr.ErrBusiness("invalid_request")
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

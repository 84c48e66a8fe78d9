package repository

import (
	"errors"
	"reflect"
	"strings"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateStruct runs struct tag validation and maps failures to a
// validation error naming the first offending field.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return apperror.Validation("field %s failed on %s", fe.Field(), fe.Tag()).Wrap(err)
	}
	return apperror.Validation("%v", err)
}

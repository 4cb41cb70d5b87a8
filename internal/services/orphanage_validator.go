package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"happy/internal/models/request_models"
	"happy/pkg/utils"
)

// OrphanageValidator checks a create request against the struct tags on
// request_models.CreateOrphanageRequest and reports every violation at once.
type OrphanageValidator struct {
	validate *validator.Validate
}

func NewOrphanageValidator() *OrphanageValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireFieldName)
	return &OrphanageValidator{validate: v}
}

// Validate returns nil or a *utils.ValidationError.
func (o *OrphanageValidator) Validate(req request_models.CreateOrphanageRequest) error {
	err := o.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validate orphanage: %w", err)
	}

	violations := make([]utils.FieldViolation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		field := fieldPath(fe)
		violations = append(violations, utils.FieldViolation{
			Field:   field,
			Rule:    fe.Tag(),
			Message: violationMessage(field, fe),
		})
	}
	return &utils.ValidationError{Violations: violations}
}

// wireFieldName names fields the way clients send them: form tag first, then json.
func wireFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(fld.Name)
}

// fieldPath drops the struct name from the namespace: images[0].path
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func violationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is a required field"
	case "latitude":
		return field + " must be a latitude between -90 and 90"
	case "longitude":
		return field + " must be a longitude between -180 and 180"
	case "boolean":
		return field + " must be true or false"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}

// Package validation checks platform documents before compilation.
//
// Validation runs two eager passes and merges their findings:
//
//  1. Structural validation with go-playground/validator: required
//     fields, value constraints (storage types, routing algorithms,
//     positive counts), reported with the offending key path.
//  2. Reference validation: every name the document declares (zones,
//     links, storage devices) is collected first, then every route and
//     filesystem reference is resolved against the collected sets, so
//     a single run reports all dangling references at once instead of
//     failing on the first one in document order.
//
// A document that passes both passes compiles without name-resolution
// errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"evalgo.org/simfabric/models"
)

// Validator validates platform documents.
type Validator struct {
	structValidator *validator.Validate
}

// ValidationError is a single validation finding with field-level detail.
type ValidationError struct {
	// Field is the key path of the offending value, e.g.
	// facilities[0].clusters[1].node.speed.
	Field string `json:"field"`

	// Message describes why the validation failed.
	Message string `json:"message"`

	// Value is the invalid value, when one exists.
	Value interface{} `json:"value,omitempty"`
}

// ValidationResult is the outcome of validating one document.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Error renders the result as one error value listing every finding.
func (r *ValidationResult) Error() string {
	if r.Valid {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return fmt.Sprintf("invalid platform document: %s", strings.Join(msgs, "; "))
}

// New creates a Validator. Field names in error paths follow the json
// tags of the document schema.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{structValidator: v}
}

// ValidatePlatform runs both validation passes over the document.
func (v *Validator) ValidatePlatform(doc *models.Platform) *ValidationResult {
	if doc == nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "document", Message: "document is nil"}},
		}
	}

	errs := v.validateStructure(doc)
	errs = append(errs, validateReferences(doc)...)

	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// validateStructure applies the struct tags of the document schema.
func (v *Validator) validateStructure(doc *models.Platform) []ValidationError {
	err := v.structValidator.Struct(doc)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Field: "document", Message: err.Error()}}
	}

	errs := make([]ValidationError, 0, len(invalid))
	for _, fe := range invalid {
		errs = append(errs, ValidationError{
			Field:   keyPath(fe.Namespace()),
			Message: messageFor(fe),
			Value:   fe.Value(),
		})
	}
	return errs
}

// keyPath strips the root struct name from a validator namespace and
// lower-cases nothing else: tag names are already json names.
func keyPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing"
	case "required_without":
		return fmt.Sprintf("one of %s or %s must be set", fe.Field(), strings.ToLower(fe.Param()))
	case "excluded_with":
		return fmt.Sprintf("%s and %s are mutually exclusive", fe.Field(), strings.ToLower(fe.Param()))
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("needs at least %s entries", fe.Param())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

package helper

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// FieldError is the per-field validation entry surfaced to clients.
type FieldError struct {
	Location string `json:"location"`
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Value    any    `json:"value"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their json name, not the Go identifier
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the declarative tag rules of a request DTO and collects
// every violation, in field declaration order. An empty result means the
// request may proceed to the duplicate and cross-reference gates.
func ValidateStruct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Location: "body", Msg: "Invalid request body", Param: ""}}
	}
	out := make([]FieldError, 0, len(ves))
	for _, fe := range ves {
		entry := FieldError{
			Location: "body",
			Msg:      messageFor(fe),
			Param:    fe.Field(),
		}
		if fe.Tag() != "required" {
			entry.Value = fe.Value()
		}
		out = append(out, entry)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please add the %s", label)
	case "min":
		return fmt.Sprintf("The %s field is empty", label)
	case "uuid4", "uuid":
		return fmt.Sprintf("The %s is not valid", label)
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must not exceed 100 characters", label)
		}
		return fmt.Sprintf("The %s must not exceed 9 digits", label)
	case "gte":
		return fmt.Sprintf("The %s must not be negative", label)
	case "oneof":
		return fmt.Sprintf("the %s provided is not a valid option", label)
	default:
		return fmt.Sprintf("The %s is not valid", label)
	}
}

// humanize turns a json field name into the label used in messages,
// e.g. "school_id" -> "school id", "groupMaxNumStudents" -> "group max num students".
func humanize(field string) string {
	field = strings.ReplaceAll(field, "_", " ")
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune(' ')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseIDParam validates the :id path segment. A malformed id is reported the
// same way body fields are, with location "params".
func ParseIDParam(c *fiber.Ctx, label string) (uuid.UUID, *FieldError) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &FieldError{
			Location: "params",
			Msg:      fmt.Sprintf("The %s is not valid", label),
			Param:    "id",
			Value:    raw,
		}
	}
	return id, nil
}

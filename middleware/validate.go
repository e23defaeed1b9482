package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/rtharindu/echannaling-admin/utils"
)

const (
	localBody   = "validatedBody"
	localQuery  = "validatedQuery"
	localParams = "validatedParams"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under the name the client sent them with.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "params"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// ValidateStruct returns one FieldError per failed rule, or nil.
func ValidateStruct(s interface{}) []utils.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []utils.FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]utils.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, utils.FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Valid email is required"
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be an ISO-8601 date-time", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}

// ValidateBody parses the JSON body into T and rejects the request before
// the handler runs when any rule fails. An empty body parses as T's zero
// value.
func ValidateBody[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in T
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return utils.BadRequest(c, "Invalid request body")
			}
		}
		if errs := ValidateStruct(in); len(errs) > 0 {
			return utils.ValidationError(c, errs)
		}
		c.Locals(localBody, in)
		return c.Next()
	}
}

func ValidateQuery[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in T
		if err := c.QueryParser(&in); err != nil {
			return utils.BadRequest(c, "Invalid query parameters")
		}
		if errs := ValidateStruct(in); len(errs) > 0 {
			return utils.ValidationError(c, errs)
		}
		c.Locals(localQuery, in)
		return c.Next()
	}
}

func ValidateParams[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in T
		if err := c.ParamsParser(&in); err != nil {
			return utils.BadRequest(c, "Invalid path parameters")
		}
		if errs := ValidateStruct(in); len(errs) > 0 {
			return utils.ValidationError(c, errs)
		}
		c.Locals(localParams, in)
		return c.Next()
	}
}

// Body returns the value stored by ValidateBody[T].
func Body[T any](c *fiber.Ctx) T {
	v, _ := c.Locals(localBody).(T)
	return v
}

func Query[T any](c *fiber.Ctx) T {
	v, _ := c.Locals(localQuery).(T)
	return v
}

func Params[T any](c *fiber.Ctx) T {
	v, _ := c.Locals(localParams).(T)
	return v
}

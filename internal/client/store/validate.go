package store

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/go-playground/validator/v10"
)

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
}

type goalsInput struct {
	Calories int `json:"calories" validate:"gte=0,lte=20000"`
	Protein  int `json:"protein" validate:"gte=0,lte=2000"`
	Carbs    int `json:"carbs" validate:"gte=0,lte=5000"`
	Fat      int `json:"fat" validate:"gte=0,lte=2000"`
}

type userUpdateInput struct {
	Name  *string     `json:"name" validate:"omitempty,min=1,max=100"`
	Goals *goalsInput `json:"dailyGoals"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// checkInput validates s and turns the first violation into a validation
// gateway error so it flows through the usual message extraction.
func checkInput(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return &gateway.Error{Kind: gateway.KindValidation, Message: err.Error(), Err: err}
	}
	return &gateway.Error{Kind: gateway.KindValidation, Message: describe(ve[0]), Err: err}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

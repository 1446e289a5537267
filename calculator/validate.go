package calculator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"flowsim/model"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 错误信息中使用 json 字段名
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// 仅检查通道几何参数和工艺参数，经验系数不做检查
func Validate(in model.SimulationInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return programmingError("validate", err)
	}
	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		reasons = append(reasons, fmt.Sprintf("%s must be > %s, got %v", fe.Field(), fe.Param(), fe.Value()))
	}
	return validationError("validate", strings.Join(reasons, "; "))
}

func ValidateParameters(in model.SimulationInput) bool {
	return Validate(in) == nil
}

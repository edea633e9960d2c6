package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct runs struct-tag validation on any value with `validate`
// tags, matching the teacher's models.ValidateStruct helper.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	if err := validate.Struct(s); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		messages := make([]string, 0, len(verrs))
		for _, e := range verrs {
			messages = append(messages, fmt.Sprintf("field '%s' failed rule '%s' (value: %v)", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return ErrInvalidInput("%s", strings.Join(messages, "; "))
	}
	return nil
}

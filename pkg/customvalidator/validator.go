// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"reflect"
	"regexp"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"fiber-service/pkg/constants"
	"fiber-service/pkg/types"
)

const defaultPhoneRegion = "BR"

var hhmmRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// RegisterCustomValidations "собирает" все наши кастомные правила валидации
// и регистрирует их в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	registerNullTypes(v)

	rules := map[string]validator.Func{
		"br_phone":         isBrazilianPhone,
		"hhmm":             isClockTime,
		"iso_date":         isISODate,
		"order_status":     oneOf(constants.IsValidStatus),
		"order_priority":   oneOf(constants.IsValidPriority),
		"service_category": oneOf(constants.IsServiceCategory),
		"technician_level": oneOf(constants.IsTechnicianLevel),
		"region":           oneOf(constants.IsRegion),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// IsBrazilianPhone принимает и "(11) 99999-1111", и "+55 11 99999-1111".
func IsBrazilianPhone(raw string) bool {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumberForRegion(num, defaultPhoneRegion)
}

// NormalizePhone приводит номер к E.164. Невалидный номер возвращается как есть.
func NormalizePhone(raw string) string {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func isBrazilianPhone(fl validator.FieldLevel) bool {
	return IsBrazilianPhone(fl.Field().String())
}

func isClockTime(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(types.DateLayout, fl.Field().String())
	return err == nil
}

func oneOf(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return check(fl.Field().String())
	}
}

// registerNullTypes учит валидатор "смотреть внутрь" типов null.String, null.Int и т.д.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			return val.String
		}
		return nil // nil, чтобы сработал `omitempty`
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Int); ok && val.Valid {
			return val.Int
		}
		return nil
	}, null.Int{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Float64); ok && val.Valid {
			return val.Float64
		}
		return nil
	}, null.Float64{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Time); ok && val.Valid {
			return val.Time
		}
		return nil
	}, null.Time{})
}

package customvalidator

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	Phone    string       `validate:"omitempty,br_phone"`
	Time     string       `validate:"omitempty,hhmm"`
	Date     string       `validate:"omitempty,iso_date"`
	Status   string       `validate:"omitempty,order_status"`
	Priority null.String  `validate:"omitempty,order_priority"`
	Cost     null.Float64 `validate:"omitempty,gte=0"`
	Category string       `validate:"omitempty,service_category"`
	Level    string       `validate:"omitempty,technician_level"`
	Region   string       `validate:"omitempty,region"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestRegisterCustomValidations_Valid(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(probe{
		Phone:    "(11) 99999-1111",
		Time:     "08:30",
		Date:     "2024-01-15",
		Status:   "AWAITING_PARTS",
		Priority: null.StringFrom("URGENT"),
		Cost:     null.Float64From(150),
		Category: "Repair",
		Level:    "Senior",
		Region:   "Zona Leste",
	})
	assert.NoError(t, err)

	assert.NoError(t, v.Struct(probe{}), "пустые необязательные поля проходят")
}

func TestRegisterCustomValidations_Invalid(t *testing.T) {
	v := newValidator(t)

	cases := map[string]probe{
		"br_phone":         {Phone: "12345"},
		"hhmm":             {Time: "24:00"},
		"iso_date":         {Date: "15/01/2024"},
		"order_status":     {Status: "Agendado"},
		"order_priority":   {Priority: null.StringFrom("CRITICAL")},
		"gte":              {Cost: null.Float64From(-1)},
		"service_category": {Category: "Other"},
		"technician_level": {Level: "Lead"},
		"region":           {Region: "Zona Central"},
	}
	for tag, p := range cases {
		t.Run(tag, func(t *testing.T) {
			err := v.Struct(p)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tag, verrs[0].Tag())
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+5511999991111", NormalizePhone("(11) 99999-1111"))
	assert.Equal(t, "abc", NormalizePhone("abc"))
	assert.True(t, IsBrazilianPhone("+55 11 99999-2222"))
}

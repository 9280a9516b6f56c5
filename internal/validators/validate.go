package validators

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Engine returns the shared validator. It reads the same `binding` tags gin
// uses, reports json field names and compares decimals numerically.
//
// Extra rules:
//
//	decimal2  a decimal.Decimal with at most two fractional digits
func Engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.SetTagName("binding")
		v.RegisterTagNameFunc(jsonName)
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		if err := v.RegisterValidation("decimal2", twoDecimalPlaces); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// Struct validates a struct or a pointer to a struct.
func Struct(s any) error {
	return Engine().Struct(s)
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func decimalValue(v reflect.Value) any {
	if d, ok := v.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// twoDecimalPlaces reads the raw decimal from the parent struct, since the
// custom type func hands rules a float64 that may have lost digits. Money
// columns are numeric(p,2) and would round anything finer on insert.
func twoDecimalPlaces(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	for parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	raw := parent.FieldByName(fl.StructFieldName())
	for raw.Kind() == reflect.Ptr {
		if raw.IsNil() {
			return true
		}
		raw = raw.Elem()
	}

	d, ok := raw.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.Equal(d.Round(2))
}

// --------------------------------------------------
// gin integration
// --------------------------------------------------

type ginValidator struct{}

// Gin plugs Engine into gin's request binding:
//
//	binding.Validator = validators.Gin()
func Gin() binding.StructValidator {
	return ginValidator{}
}

func (ginValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	return Engine().Struct(obj)
}

func (ginValidator) Engine() any {
	return Engine()
}

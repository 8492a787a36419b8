package controllers

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"

	apperrors "bar-inventory/pkg/errors"
)

// SetField кладёт строковое значение из поля ввода в черновик по имени
// wire-поля (json- или form-тег). Это весь разбор, который делает клиент:
// числа парсятся по типу поля, пустая строка в nullable-поле даёт NULL,
// остальной контроль — за валидатором и бэкендом.
func SetField(draft interface{}, name, value string) error {
	v := reflect.ValueOf(draft)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("черновик должен быть непустым указателем на структуру")
	}
	v = v.Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if wireName(field) != name {
			continue
		}
		return assign(v.Field(i), name, value)
	}
	return fmt.Errorf("%w: %q", apperrors.ErrUnknownField, name)
}

func wireName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		tag = field.Tag.Get("form")
	}
	return strings.Split(tag, ",")[0]
}

func assign(target reflect.Value, name, value string) error {
	if !target.CanSet() {
		return fmt.Errorf("поле %q недоступно для записи", name)
	}

	switch target.Interface().(type) {
	case string:
		target.SetString(value)
		return nil

	case int, int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return apperrors.NewInvalidInputError("поле %q ожидает целое число, получено %q", name, value)
		}
		target.SetInt(n)
		return nil

	case float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return apperrors.NewInvalidInputError("поле %q ожидает число, получено %q", name, value)
		}
		target.SetFloat(f)
		return nil

	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return apperrors.NewInvalidInputError("поле %q ожидает true/false, получено %q", name, value)
		}
		target.SetBool(b)
		return nil

	case null.String:
		// Очищенное поле ввода — это NULL, а не пустая строка.
		target.Set(reflect.ValueOf(null.NewString(value, value != "")))
		return nil

	case null.Float64:
		if value == "" {
			target.Set(reflect.ValueOf(null.Float64{}))
			return nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return apperrors.NewInvalidInputError("поле %q ожидает число, получено %q", name, value)
		}
		target.Set(reflect.ValueOf(null.Float64From(f)))
		return nil

	default:
		return fmt.Errorf("поле %q имеет нередактируемый тип %s", name, target.Type())
	}
}

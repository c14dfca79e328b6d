// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package form maps URL query values to struct fields named by their json tags.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// ErrInvalidField is returned for values that do not parse as the field type.
var ErrInvalidField = errors.New("invalid query value")

// Decode sets the fields of the struct pointed to by dst from values.
// Absent keys leave fields untouched. Pointer fields are allocated when their
// key is present, so they can tell an absent key from a zero value.
func Decode(values url.Values, dst any) (err error) {

	dstVal := reflect.ValueOf(dst)
	if dstVal.Kind() != reflect.Pointer || dstVal.IsNil() || dstVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("form: destination must be a non-nil struct pointer, got %T", dst)
	}
	dstVal = dstVal.Elem()

	typ := dstVal.Type()
	for i := 0; i < typ.NumField(); i++ {
		key, ok := fieldKey(typ.Field(i))
		if !ok || !values.Has(key) {
			continue
		}
		fv := dstVal.Field(i)
		if fv.Kind() == reflect.Pointer {
			ptr := reflect.New(fv.Type().Elem())
			if err = setValue(ptr.Elem(), values.Get(key)); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidField, key, err)
			}
			fv.Set(ptr)
			continue
		}
		if err = setValue(fv, values.Get(key)); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidField, key, err)
		}
	}
	return nil
}

// Encode is the reverse of Decode. Nil pointers and empty strings are skipped.
func Encode(src any) (values url.Values) {

	values = make(url.Values)
	srcVal := reflect.ValueOf(src)
	for srcVal.Kind() == reflect.Pointer && !srcVal.IsNil() {
		srcVal = srcVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct {
		return values
	}

	typ := srcVal.Type()
	for i := 0; i < typ.NumField(); i++ {
		key, ok := fieldKey(typ.Field(i))
		if !ok {
			continue
		}
		fv := srcVal.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if s := formatValue(fv); s != "" {
			values.Set(key, s)
		}
	}
	return values
}

func fieldKey(f reflect.StructField) (key string, ok bool) {

	if !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return "", false
	}
	key = strings.TrimSpace(strings.Split(tag, ",")[0])
	return key, key != ""
}

func setValue(fv reflect.Value, s string) error {

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(x)
	default:
		return fmt.Errorf("unsupported field type %s", fv.Type())
	}
	return nil
}

func formatValue(fv reflect.Value) string {

	switch fv.Kind() {
	case reflect.String:
		return fv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(fv.Uint(), 10)
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool())
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'f', -1, fv.Type().Bits())
	default:
		return fmt.Sprint(fv.Interface())
	}
}

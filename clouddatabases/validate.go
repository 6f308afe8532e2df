package clouddatabases

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return v
}

// jsonName returns the wire name of a struct field, which is also the name
// used in validation errors.
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// validateModel checks the required properties of a caller-built model.
func validateModel(model interface{}) error {
	if isNilValue(model) {
		return &ArgumentError{Name: "model", Reason: "cannot be nil"}
	}
	err := validate.Struct(model)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ModelError{Entity: ownerName(model, fe.StructNamespace()), Field: fe.Field(), Reason: fieldReason(fe)}
	}
	return err
}

// validateOptions checks the parameters of an operation before a request is
// built. A bad top-level parameter is an ArgumentError; a bad property inside
// a body model is a ModelError naming that model.
func validateOptions(options interface{}, name string) error {
	if isNilValue(options) {
		return &ArgumentError{Name: name, Reason: "cannot be nil"}
	}
	err := validate.Struct(options)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if strings.Count(fe.StructNamespace(), ".") > 1 {
			return &ModelError{Entity: ownerName(options, fe.StructNamespace()), Field: fe.Field(), Reason: fieldReason(fe)}
		}
		return &ArgumentError{Name: fe.Field(), Reason: fieldReason(fe)}
	}
	return err
}

// fieldReason describes a failed rule. A missing value has no reason, which
// the error types render as "must be set".
func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return ""
	case "ne":
		if fe.Param() == "" {
			return ""
		}
		return fmt.Sprintf("must not be %q", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.Join(strings.Fields(fe.Param()), ", "))
	}
	if fe.Param() != "" {
		return fmt.Sprintf("fails %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("fails %s", fe.Tag())
}

// ownerName follows a validator namespace such as
// "CreateDatabaseUserOptions.User.Password" from root and returns the name of
// the type holding the last field.
func ownerName(root interface{}, structNs string) string {
	segs := strings.Split(structNs, ".")
	v := reflect.ValueOf(root)
	for _, seg := range segs[1 : len(segs)-1] {
		name, idx := seg, -1
		if i := strings.IndexByte(seg, '['); i >= 0 {
			name = seg[:i]
			idx, _ = strconv.Atoi(strings.Trim(seg[i:], "[]"))
		}
		v = indirect(v)
		if v.Kind() != reflect.Struct {
			return typeName(root)
		}
		v = v.FieldByName(name)
		if idx >= 0 {
			v = indirect(v)
			if (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) || idx >= v.Len() {
				return typeName(root)
			}
			v = v.Index(idx)
		}
	}
	v = indirect(v)
	if !v.IsValid() {
		return typeName(root)
	}
	return v.Type().Name()
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func typeName(v interface{}) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func isNilValue(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

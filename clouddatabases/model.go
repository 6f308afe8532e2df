package clouddatabases

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/iancoleman/orderedmap"
	"github.com/juju/errors"
)

var requiredKeysCache sync.Map

// requiredKeys lists the json names of the fields of t tagged
// `validate:"required"`.
func requiredKeys(t reflect.Type) []string {
	if v, ok := requiredKeysCache.Load(t); ok {
		return v.([]string)
	}
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !hasRule(f.Tag.Get("validate"), "required") {
			continue
		}
		if name := jsonName(f); name != "" {
			keys = append(keys, name)
		}
	}
	requiredKeysCache.Store(t, keys)
	return keys
}

func hasRule(tag, rule string) bool {
	for _, part := range strings.Split(tag, ",") {
		if part == rule {
			return true
		}
	}
	return false
}

func isNullJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

// unmarshalModel decodes data into result once every required property of
// entity is known to be present. result must point to a type without its own
// UnmarshalJSON so decoding does not recurse.
func unmarshalModel(data []byte, entity string, result interface{}) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return errors.Annotatef(err, "unmarshalling %s", entity)
	}
	for _, key := range requiredKeys(reflect.TypeOf(result).Elem()) {
		if raw, ok := m[key]; !ok || isNullJSON(raw) {
			return &ModelError{Entity: entity, Field: key}
		}
	}
	return json.Unmarshal(data, result)
}

// jsonUnmarshal keeps model errors as they are and traces anything else.
func jsonUnmarshal(data []byte, result interface{}) error {
	err := json.Unmarshal(data, result)
	if err == nil || IsModelError(err) {
		return err
	}
	return errors.Trace(err)
}

// Unmarshal converts a generic JSON mapping into result, a pointer to one of
// the models of this package. Unknown keys are ignored.
func Unmarshal(m map[string]interface{}, result interface{}) error {
	if isNilValue(result) {
		return &ArgumentError{Name: "result", Reason: "cannot be nil"}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return errors.Trace(err)
	}
	return jsonUnmarshal(data, result)
}

// UnmarshalRaw is Unmarshal for a mapping whose values are still encoded.
func UnmarshalRaw(m map[string]json.RawMessage, result interface{}) error {
	if isNilValue(result) {
		return &ArgumentError{Name: "result", Reason: "cannot be nil"}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return errors.Trace(err)
	}
	return jsonUnmarshal(data, result)
}

// AsMap converts a model into a generic JSON mapping. Optional properties that
// are not set do not appear in the result. Nested objects are
// *orderedmap.OrderedMap values so open mappings keep their key order, and
// numbers are kept as json.Number.
func AsMap(model interface{}) (map[string]interface{}, error) {
	if isNilValue(model) {
		return nil, &ArgumentError{Name: "model", Reason: "cannot be nil"}
	}
	data, err := json.Marshal(model)
	if err != nil {
		return nil, errors.Trace(err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeOrdered(dec)
	if err != nil {
		return nil, errors.Trace(err)
	}
	om, ok := v.(*orderedmap.OrderedMap)
	if !ok {
		return nil, errors.Errorf("%T does not serialize to a JSON object", model)
	}
	m := make(map[string]interface{}, len(om.Keys()))
	for _, k := range om.Keys() {
		m[k], _ = om.Get(k)
	}
	return m, nil
}

// decodeOrdered reads the next JSON value from dec. Objects become
// *orderedmap.OrderedMap in document order.
func decodeOrdered(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		om := orderedmap.New()
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := tok.(string)
			if !ok {
				return nil, errors.Errorf("unexpected object key %v", tok)
			}
			v, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			om.Set(key, v)
		}
		_, err = dec.Token()
		return om, err
	case '[':
		list := []interface{}{}
		for dec.More() {
			v, err := decodeOrdered(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		_, err = dec.Token()
		return list, err
	}
	return nil, errors.Errorf("unexpected delimiter %v", delim)
}

var (
	dateTimeType   = reflect.TypeOf(strfmt.DateTime{})
	orderedMapType = reflect.TypeOf(orderedmap.OrderedMap{})
	rawMessageType = reflect.TypeOf(json.RawMessage{})
)

// Equal reports whether a and b are the same model type with the same
// properties set to the same values. Timestamps are compared as instants and
// open mappings are compared in key order.
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValues(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case dateTimeType:
		return time.Time(a.Interface().(strfmt.DateTime)).Equal(time.Time(b.Interface().(strfmt.DateTime)))
	case orderedMapType:
		oa, ob := a.Interface().(orderedmap.OrderedMap), b.Interface().(orderedmap.OrderedMap)
		return equalOrderedMaps(&oa, &ob)
	case rawMessageType:
		return equalRaw(a.Interface().(json.RawMessage), b.Interface().(json.RawMessage))
	}
	switch a.Kind() {
	case reflect.Ptr, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return equalValues(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !a.Type().Field(i).IsExported() {
				continue
			}
			if !equalValues(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValues(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() || !equalValues(iter.Value(), bv) {
				return false
			}
		}
		return true
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return false
	}
	return a.Interface() == b.Interface()
}

func equalOrderedMaps(a, b *orderedmap.OrderedMap) bool {
	ka, kb := a.Keys(), b.Keys()
	if len(ka) != len(kb) {
		return false
	}
	for i, k := range ka {
		if kb[i] != k {
			return false
		}
		va, _ := a.Get(k)
		vb, _ := b.Get(k)
		if !equalValues(reflect.ValueOf(va), reflect.ValueOf(vb)) {
			return false
		}
	}
	return true
}

// equalRaw compares still-encoded values, ignoring insignificant whitespace.
func equalRaw(a, b json.RawMessage) bool {
	if isNullJSON(a) || isNullJSON(b) {
		return isNullJSON(a) && isNullJSON(b)
	}
	var ca, cb bytes.Buffer
	if json.Compact(&ca, a) != nil || json.Compact(&cb, b) != nil {
		return bytes.Equal(a, b)
	}
	return bytes.Equal(ca.Bytes(), cb.Bytes())
}

// canonicalDateTime truncates a parsed timestamp to the precision it is
// serialized with.
func canonicalDateTime(dt *strfmt.DateTime) *strfmt.DateTime {
	if dt == nil {
		return nil
	}
	v := strfmt.DateTime(time.Time(*dt).Truncate(time.Millisecond))
	return &v
}

// StringPtr and friends build optional properties inline.
func StringPtr(v string) *string { return &v }

func Int64Ptr(v int64) *int64 { return &v }

func Float64Ptr(v float64) *float64 { return &v }

func BoolPtr(v bool) *bool { return &v }

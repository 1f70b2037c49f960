package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// Params is a query parameter mapping. Entries whose value is nil (or a nil
// pointer) are left out of the query string.
type Params map[string]any

// EncodeQuery converts q into url.Values. q may be nil, Params, url.Values,
// or a struct (or pointer to one) whose fields become parameters. Struct
// fields are named by their `query` tag, falling back to the snake_case
// field name; a tag of "-" skips the field. Embedded structs are flattened.
// Nil pointer, nil slice and nil interface fields are omitted, everything
// else is sent as-is.
func EncodeQuery(q any) (url.Values, error) {
	values := url.Values{}

	switch v := q.(type) {
	case nil:
		return values, nil
	case url.Values:
		for k, vs := range v {
			values[k] = append([]string(nil), vs...)
		}
		return values, nil
	case Params:
		return encodeMap(v, values)
	case map[string]any:
		return encodeMap(v, values)
	}

	rv := reflect.ValueOf(q)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return values, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported query type %T", q)
	}

	if err := encodeStruct(rv, values); err != nil {
		return nil, err
	}
	return values, nil
}

// encodeStruct adds the fields of rv to values. Embedded structs are
// flattened into the parent.
func encodeStruct(rv reflect.Value, values url.Values) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		fv := rv.Field(i)

		if field.Anonymous {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if err := encodeStruct(fv, values); err != nil {
					return err
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}

		name := strcase.ToSnake(field.Name)
		if tag, ok := field.Tag.Lookup("query"); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		if err := addValue(values, name, fv); err != nil {
			return err
		}
	}
	return nil
}

func encodeMap(m map[string]any, values url.Values) (url.Values, error) {
	for k, v := range m {
		if v == nil {
			continue
		}
		if err := addValue(values, k, reflect.ValueOf(v)); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func addValue(values url.Values, name string, rv reflect.Value) error {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := addValue(values, name, rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}

	s, err := formatValue(rv)
	if err != nil {
		return fmt.Errorf("query parameter %q: %w", name, err)
	}
	values.Add(name, s)
	return nil
}

// formatValue formats by kind, so named enum types go out as their
// underlying value rather than their String form.
func formatValue(rv reflect.Value) (string, error) {
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported kind %s", rv.Kind())
	}
}

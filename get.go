package conf

import "fmt"

// Integer constrains the numeric accessor to Go's signed and unsigned
// integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// scalarAt resolves path to a single-valued property of the wanted kind.
func scalarAt(doc *Document, path string, want ValueKind) (Value, error) {
	item, err := itemAt(doc, path)
	if err != nil {
		return Value{}, err
	}
	if item.Kind == ItemList {
		return Value{}, &QueryError{
			Err:    ErrUnexpectedDataType,
			Path:   path,
			Detail: fmt.Sprintf("property %q is a list, not a single %s", item.Name, want),
		}
	}
	if item.Value.Kind != want {
		return Value{}, &QueryError{
			Err:    ErrUnexpectedDataType,
			Path:   path,
			Detail: fmt.Sprintf("property %q holds a %s, not a %s", item.Name, item.Value.Kind, want),
		}
	}
	return item.Value, nil
}

// Int resolves path to a numeric property and converts the stored value
// to T. Values outside the range of T fail with ErrIntegerOverflow.
func Int[T Integer](doc *Document, path string) (T, error) {
	v, err := scalarAt(doc, path, ValueNumber)
	if err != nil {
		return 0, err
	}

	n := v.Num
	var zero T
	if n < 0 && zero-1 > zero {
		return 0, overflowError(path, n)
	}
	if converted := T(n); int64(converted) != n {
		return 0, overflowError(path, n)
	}
	return T(n), nil
}

func overflowError(path string, n int64) *QueryError {
	return &QueryError{
		Err:    ErrIntegerOverflow,
		Path:   path,
		Detail: fmt.Sprintf("value %d does not fit the requested integer type", n),
	}
}

// Bool resolves path to a boolean property.
func Bool(doc *Document, path string) (bool, error) {
	v, err := scalarAt(doc, path, ValueBool)
	if err != nil {
		return false, err
	}
	return v.Flag, nil
}

// Str resolves path to a string property.
func Str(doc *Document, path string) (string, error) {
	v, err := scalarAt(doc, path, ValueString)
	if err != nil {
		return "", err
	}
	return v.Str, nil
}

// List resolves path to a list property and returns its values in source
// order. Single-valued properties fail with ErrUnexpectedDataType.
func List(doc *Document, path string) ([]Value, error) {
	item, err := itemAt(doc, path)
	if err != nil {
		return nil, err
	}
	if item.Kind != ItemList {
		return nil, &QueryError{
			Err:    ErrUnexpectedDataType,
			Path:   path,
			Detail: fmt.Sprintf("property %q is a single value, not a list", item.Name),
		}
	}
	return item.Values, nil
}

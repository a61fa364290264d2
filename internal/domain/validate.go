package domain

import "encoding/json"

// Validate checks the raw endpoint payload against the expected shape.
// Pure, no I/O. An empty homework list is valid: "no new statuses" is
// a normal outcome, not an error.
func Validate(raw RawResponse) (StatusPage, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return StatusPage{}, &TypeMismatchError{What: "response", Want: "a mapping"}
	}

	hw, ok := m["homeworks"]
	if !ok {
		return StatusPage{}, &MissingKeyError{Key: "homeworks"}
	}

	list, ok := hw.([]any)
	if !ok {
		return StatusPage{}, &TypeMismatchError{What: "homeworks", Want: "a list"}
	}

	cd, ok := m["current_date"]
	if !ok {
		return StatusPage{}, &MissingKeyError{Key: "current_date"}
	}

	ts, err := asInt64(cd)
	if err != nil {
		return StatusPage{}, err
	}

	return StatusPage{Homeworks: list, CurrentDate: ts}, nil
}

// asInt64 accepts json.Number (the client decodes with UseNumber) and
// native Go integers (mocks, tests). Floats and strings are mistyped.
func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &TypeMismatchError{What: "current_date", Want: "an integer"}
		}
		return i, nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, &TypeMismatchError{What: "current_date", Want: "an integer"}
	}
}

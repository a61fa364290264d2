package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidate_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  RawResponse
		want string // "key" or "type"
	}{
		{"not a mapping", []any{"homeworks"}, "type"},
		{"nil response", nil, "type"},
		{"missing homeworks", map[string]any{"current_date": 1}, "key"},
		{"homeworks not a list", map[string]any{"homeworks": "hw1", "current_date": 1}, "type"},
		{"missing current_date", map[string]any{"homeworks": []any{}}, "key"},
		{"current_date is a string", map[string]any{"homeworks": []any{}, "current_date": "soon"}, "type"},
		{"current_date is fractional", map[string]any{"homeworks": []any{}, "current_date": json.Number("10.5")}, "type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var keyErr *MissingKeyError
			var typeErr *TypeMismatchError
			switch tc.want {
			case "key":
				if !errors.As(err, &keyErr) {
					t.Errorf("expected MissingKeyError, got %T: %v", err, err)
				}
			case "type":
				if !errors.As(err, &typeErr) {
					t.Errorf("expected TypeMismatchError, got %T: %v", err, err)
				}
			}
		})
	}
}

func TestValidate_EmptyListIsValid(t *testing.T) {
	page, err := Validate(map[string]any{"homeworks": []any{}, "current_date": 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Homeworks) != 0 {
		t.Errorf("expected empty list, got %d items", len(page.Homeworks))
	}
	if page.CurrentDate != 1000 {
		t.Errorf("expected current_date 1000, got %d", page.CurrentDate)
	}
}

func TestValidate_PageWithItems(t *testing.T) {
	raw := map[string]any{
		"homeworks": []any{
			map[string]any{"homework_name": "hw1", "status": "approved"},
			map[string]any{"homework_name": "hw0", "status": "rejected"},
		},
		"current_date": json.Number("2000"),
	}

	page, err := Validate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Homeworks) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page.Homeworks))
	}
	if page.CurrentDate != 2000 {
		t.Errorf("expected current_date 2000, got %d", page.CurrentDate)
	}
}

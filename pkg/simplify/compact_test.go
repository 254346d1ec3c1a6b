package simplify_test

import (
	"reflect"
	"testing"

	"figctx/pkg/simplify"
)

func TestCompactDropsEmptyContainers(t *testing.T) {
	got := simplify.Compact(map[string]any{
		"a": []any{},
		"b": map[string]any{},
		"c": 0,
		"d": false,
		"e": map[string]any{"f": 1},
	})

	want := map[string]any{
		"c": 0,
		"d": false,
		"e": map[string]any{"f": 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compact = %#v, want %#v", got, want)
	}
}

func TestCompactRemovesNestedEmpties(t *testing.T) {
	got := simplify.Compact(map[string]any{
		"outer": map[string]any{
			"inner": []any{},
		},
	})

	if !reflect.DeepEqual(got, map[string]any{}) {
		t.Errorf("Compact = %#v, want empty map", got)
	}
}

func TestCompactKeepsZeroScalars(t *testing.T) {
	got := simplify.Compact(map[string]any{
		"count": 0,
		"flag":  false,
		"text":  "",
	})

	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Compact returned %T, want map", got)
	}
	for _, key := range []string{"count", "flag", "text"} {
		if _, present := m[key]; !present {
			t.Errorf("key %q dropped, want kept", key)
		}
	}
}

func TestCompactKeepsArrayElements(t *testing.T) {
	// Elements are never dropped from arrays, only object keys are.
	got := simplify.Compact(map[string]any{
		"list": []any{map[string]any{}, 0, ""},
	})

	m := got.(map[string]any)
	list, ok := m["list"].([]any)
	if !ok {
		t.Fatalf("list missing or wrong type: %#v", m["list"])
	}
	if len(list) != 3 {
		t.Errorf("expected 3 elements preserved, got %d", len(list))
	}
}

func TestCompactDropsNilValues(t *testing.T) {
	got := simplify.Compact(map[string]any{
		"gone": nil,
		"kept": "x",
	})

	m := got.(map[string]any)
	if _, present := m["gone"]; present {
		t.Error("nil value kept, want dropped")
	}
	if m["kept"] != "x" {
		t.Errorf("kept = %v, want %q", m["kept"], "x")
	}
}

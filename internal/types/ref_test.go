package types

import (
	"encoding/json"
	"testing"
)

// TestRefDecodesBareString tests decoding a reference sent as a plain id
func TestRefDecodesBareString(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`"abc123"`), &r); err != nil {
		t.Fatalf("Failed to decode bare string: %v", err)
	}
	if r.String() != "abc123" {
		t.Errorf("Expected abc123, got %s", r)
	}
}

// TestRefDecodesObject tests decoding a reference sent as a nested object
func TestRefDecodesObject(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`{"id":"abc123","name":"ignored"}`), &r); err != nil {
		t.Fatalf("Failed to decode object: %v", err)
	}
	if r.String() != "abc123" {
		t.Errorf("Expected abc123, got %s", r)
	}
}

// TestRefDecodesNull tests that null leaves the reference empty
func TestRefDecodesNull(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`null`), &r); err != nil {
		t.Fatalf("Failed to decode null: %v", err)
	}
	if r != "" {
		t.Errorf("Expected empty ref, got %s", r)
	}
}

// TestRefMarshalsAsString tests encoding back to a bare id
func TestRefMarshalsAsString(t *testing.T) {
	out, err := json.Marshal(Ref("abc123"))
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if string(out) != `"abc123"` {
		t.Errorf("Expected quoted id, got %s", out)
	}
}

// TestRefListMixedForms tests a list mixing bare ids and nested objects
func TestRefListMixedForms(t *testing.T) {
	var l RefList
	if err := json.Unmarshal([]byte(`["a", {"id":"b"}, "c"]`), &l); err != nil {
		t.Fatalf("Failed to decode list: %v", err)
	}

	ids := l.IDs()
	if len(ids) != 3 {
		t.Fatalf("Expected 3 ids, got %d", len(ids))
	}
	for i, want := range []string{"a", "b", "c"} {
		if ids[i] != want {
			t.Errorf("Expected %s at %d, got %s", want, i, ids[i])
		}
	}
}

// TestRefListSingleItem tests that a single object decodes as a one-item list
func TestRefListSingleItem(t *testing.T) {
	var l RefList
	if err := json.Unmarshal([]byte(`{"id":"only"}`), &l); err != nil {
		t.Fatalf("Failed to decode single item: %v", err)
	}
	if len(l) != 1 || l[0] != "only" {
		t.Errorf("Expected single 'only' entry, got %v", l)
	}
}

// TestRefListSkipsEmptyIDs tests that empty references drop out of IDs
func TestRefListSkipsEmptyIDs(t *testing.T) {
	l := RefList{"a", "", "b"}
	ids := l.IDs()
	if len(ids) != 2 {
		t.Errorf("Expected 2 ids, got %d", len(ids))
	}
}

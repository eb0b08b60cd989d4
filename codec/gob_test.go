package codec

import (
	"reflect"
	"testing"
)

type gobSample struct {
	Name  string
	Count int
	Tags  []string
	Extra map[string]string
}

func TestGobRoundTrip(t *testing.T) {
	want := gobSample{
		Name:  "alice",
		Count: 7,
		Tags:  []string{"a", "b"},
		Extra: map[string]string{"locale": "en"},
	}

	data, err := Gob{}.Marshal(&want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got gobSample
	if err := (Gob{}).Unmarshal(data, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("value mismatch: got=%+v want=%+v", got, want)
	}
}

func TestGobMarshalNil(t *testing.T) {
	if _, err := (Gob{}).Marshal(nil); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGobUnmarshalGarbage(t *testing.T) {
	var got gobSample
	if err := (Gob{}).Unmarshal([]byte("not a gob stream"), &got); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGobName(t *testing.T) {
	if got := (Gob{}).Name(); got != "gob" {
		t.Fatalf("Name() = %q, want %q", got, "gob")
	}
}

package store

import (
	"testing"
)

func TestKVRoundTrip(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	// Missing key
	_, ok, err := db.GetValue("interests")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing key")
	}

	// Set and get
	if err := db.SetValue("interests", `["Heritage"]`); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	v, ok, err := db.GetValue("interests")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if !ok || v != `["Heritage"]` {
		t.Errorf("GetValue = %q, %v; want [\"Heritage\"], true", v, ok)
	}

	// Overwrite
	if err := db.SetValue("interests", `[]`); err != nil {
		t.Fatalf("SetValue overwrite: %v", err)
	}
	v, _, _ = db.GetValue("interests")
	if v != `[]` {
		t.Errorf("GetValue after overwrite = %q, want []", v)
	}
}

func TestKVSetValues(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	pairs := map[string]string{
		"interests":     `["Dance"]`,
		"activity":      `{"dance":5}`,
		"sessionSynced": "true",
	}
	if err := db.SetValues(pairs); err != nil {
		t.Fatalf("SetValues: %v", err)
	}

	for key, want := range pairs {
		v, ok, err := db.GetValue(key)
		if err != nil {
			t.Fatalf("GetValue %q: %v", key, err)
		}
		if !ok || v != want {
			t.Errorf("GetValue %q = %q, %v; want %q, true", key, v, ok, want)
		}
	}
}

func TestKVDeleteValue(t *testing.T) {
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	db.SetValue("sessionSynced", "true")
	if err := db.DeleteValue("sessionSynced"); err != nil {
		t.Fatalf("DeleteValue: %v", err)
	}
	_, ok, _ := db.GetValue("sessionSynced")
	if ok {
		t.Error("expected key gone after delete")
	}

	// Deleting a missing key is not an error
	if err := db.DeleteValue("sessionSynced"); err != nil {
		t.Errorf("DeleteValue missing key: %v", err)
	}
}

package store

import (
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openTemp(t)

	if err := s.Put("k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get reported key absent after Put")
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("Get = %q, want %q", got, `{"a":1}`)
	}
}

func TestSQLiteGetMissing(t *testing.T) {
	s := openTemp(t)

	_, ok, err := s.Get("absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("Get reported an absent key as present")
	}
}

func TestSQLitePutReplaces(t *testing.T) {
	s := openTemp(t)

	if err := s.Put("k", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("k", []byte("v2")); err != nil {
		t.Fatal(err)
	}

	got, _, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v2" {
		t.Fatalf("Get = %q, want v2", got)
	}
}

func TestSQLiteDelete(t *testing.T) {
	s := openTemp(t)

	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("key still present after Delete")
	}

	// Deleting again is a no-op, not an error.
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete absent key: %v", err)
	}
}

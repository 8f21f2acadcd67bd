package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBalanceStoreMissing(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "balance.txt"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, ok, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if ok {
		t.Fatal("expected missing balance to report ok=false")
	}
}

func TestBalanceStoreWriteRead(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "balance.txt"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.Write(240.5); err != nil {
		t.Fatalf("Write: %v", err)
	}

	v, ok, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after write")
	}
	if v != 240.5 {
		t.Fatalf("got balance %v, want 240.5", v)
	}
}

func TestBalanceStoreOverwrite(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "balance.txt"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.Write(100); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Write(-42.1); err != nil {
		t.Fatalf("Write: %v", err)
	}

	v, ok, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !ok || v != -42.1 {
		t.Fatalf("got (%v, %v), want (-42.1, true)", v, ok)
	}
}

func TestBalanceStoreFormatsTwoDecimals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balance.txt")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.Write(100); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read raw file: %v", err)
	}
	if string(data) != "100.00" {
		t.Fatalf("got %q, want %q", string(data), "100.00")
	}
}

package memory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_List(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for name, body := range map[string]string{
		"b.md":    "bee",
		"a.json":  `{"k":1}`,
		".hidden": "secret",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := NewStore(dir).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 files, got %+v", got)
	}
	if got[0].Name != "a.json" || got[1].Name != "b.md" {
		t.Fatalf("unexpected order: %q, %q", got[0].Name, got[1].Name)
	}
	if got[1].Size != 3 {
		t.Fatalf("size: got %d, want 3", got[1].Size)
	}
}

func TestStore_List_MissingDir(t *testing.T) {
	t.Parallel()

	got, err := NewStore(filepath.Join(t.TempDir(), "nope")).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestStore_Read(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := NewStore(dir)

	data, err := s.Read("notes.md")
	if err != nil || string(data) != "hello" {
		t.Fatalf("Read: %q, %v", data, err)
	}

	if _, err := s.Read("missing.md"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()

	bad := []string{"", ".", "..", "../etc/passwd", "a/b", `a\b`, ".env", "x\x00y", "tab\tname"}
	for _, name := range bad {
		if err := ValidateName(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("ValidateName(%q) = %v; want ErrInvalidName", name, err)
		}
	}
	for _, name := range []string{"notes.md", "2025-01-01.json", "kissy report.txt"} {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v; want nil", name, err)
		}
	}
}

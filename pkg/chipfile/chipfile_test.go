package chipfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/chips/pkg/chip"
	"github.com/go-drift/chips/pkg/errors"
)

const samplePool = `
chips:
  - id: ada
    title: Ada Lovelace
    subtitle: ada@example.com
    avatar: https://example.com/ada.png
  - id: " grace "
    title: Grace Hopper
    filterable: true
  - id: guest
    title: Guest
    filterable: false
`

func TestParse(t *testing.T) {
	pool, err := Parse([]byte(samplePool))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(pool) != 3 {
		t.Fatalf("got %d chips, want 3", len(pool))
	}

	ada := pool[0]
	if ada.ID() != "ada" || ada.Title() != "Ada Lovelace" || ada.Subtitle() != "ada@example.com" {
		t.Errorf("unexpected first chip %+v", ada)
	}
	if ada.Avatar().URI != "https://example.com/ada.png" {
		t.Errorf("Avatar().URI = %q", ada.Avatar().URI)
	}
	if pool[1].ID() != "grace" {
		t.Errorf("ID = %q, want trimmed grace", pool[1].ID())
	}
	if !pool[0].Filterable() || !pool[1].Filterable() {
		t.Error("expected filterable to default to true")
	}
	if pool[2].Filterable() {
		t.Error("expected guest to be non-filterable")
	}
	if !pool[1].Avatar().IsZero() {
		t.Error("expected grace to have no avatar")
	}
}

func TestParseIntoDataSource(t *testing.T) {
	pool, err := Parse([]byte(samplePool))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ds := chip.NewListDataSource()
	ds.SetFilterableChips(pool)

	if got := len(ds.FilteredChips()); got != 2 {
		t.Errorf("got %d filtered chips, want 2", got)
	}
}

func TestParseEmpty(t *testing.T) {
	pool, err := Parse([]byte("chips: []\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(pool) != 0 {
		t.Errorf("got %d chips, want 0", len(pool))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed yaml", "chips: [", "failed to parse pool"},
		{"missing id", "chips:\n  - title: A\n", "invalid pool"},
		{"blank title", "chips:\n  - id: a\n    title: '  '\n", "invalid pool"},
		{"duplicate id", "chips:\n  - {id: a, title: A}\n  - {id: a, title: B}\n", "invalid pool"},
		{"bad avatar", "chips:\n  - {id: a, title: A, avatar: 'not a uri'}\n", "invalid pool"},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.data))
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q should contain %q", tt.name, err, tt.want)
		}
		var ce *errors.ChipError
		if !errors.As(err, &ce) || ce.Kind != errors.KindConfig {
			t.Errorf("%s: expected a config ChipError, got %T", tt.name, err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pool.yaml")
	if err := os.WriteFile(path, []byte(samplePool), 0o644); err != nil {
		t.Fatal(err)
	}

	pool, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(pool) != 3 {
		t.Errorf("got %d chips, want 3", len(pool))
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v should wrap os.ErrNotExist", err)
	}
}

func TestRead(t *testing.T) {
	pool, err := Read(strings.NewReader(samplePool))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(pool) != 3 {
		t.Errorf("got %d chips, want 3", len(pool))
	}
}

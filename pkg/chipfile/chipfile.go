// Package chipfile loads chip pools from YAML files.
//
// A pool file lists the candidate chips of a chip input:
//
//	chips:
//	  - id: ada
//	    title: Ada Lovelace
//	    subtitle: ada@example.com
//	    avatar: https://example.com/ada.png
//	  - id: guest
//	    title: Guest
//	    filterable: false
package chipfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/chips/pkg/chip"
	"github.com/go-drift/chips/pkg/errors"
)

// File is the YAML document of a chip pool.
type File struct {
	Chips []Entry `yaml:"chips" validate:"unique=ID,dive"`
}

// Entry describes one chip.
type Entry struct {
	ID       string `yaml:"id" validate:"required"`
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle,omitempty"`
	Avatar   string `yaml:"avatar,omitempty" validate:"omitempty,uri"`
	// Filterable defaults to true when omitted.
	Filterable *bool `yaml:"filterable,omitempty"`
}

// Chip converts the entry to a chip.Item.
func (e Entry) Chip() *chip.Item {
	return &chip.Item{
		Key:           e.ID,
		Label:         e.Title,
		Info:          e.Subtitle,
		AvatarURI:     e.Avatar,
		NonFilterable: e.Filterable != nil && !*e.Filterable,
	}
}

// Pool returns the chips of the file in order.
func (f *File) Pool() []chip.Chip {
	pool := make([]chip.Chip, len(f.Chips))
	for i, e := range f.Chips {
		pool[i] = e.Chip()
	}
	return pool
}

// Decode parses and validates a pool file.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, configError("chipfile.Decode", fmt.Errorf("failed to parse pool: %w", err))
	}
	for i := range f.Chips {
		f.Chips[i].ID = strings.TrimSpace(f.Chips[i].ID)
		f.Chips[i].Title = strings.TrimSpace(f.Chips[i].Title)
	}

	validate := validator.New()
	if err := validate.Struct(f); err != nil {
		return nil, configError("chipfile.Decode", fmt.Errorf("invalid pool: %w", err))
	}
	return &f, nil
}

// Parse decodes data and returns its chips.
func Parse(data []byte) ([]chip.Chip, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return f.Pool(), nil
}

// Read parses a pool from r.
func Read(r io.Reader) ([]chip.Chip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, configError("chipfile.Read", fmt.Errorf("failed to read pool: %w", err))
	}
	return Parse(data)
}

// Load parses the pool file at path.
func Load(path string) ([]chip.Chip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("chipfile.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

func configError(op string, err error) error {
	return &errors.ChipError{Op: op, Kind: errors.KindConfig, Err: err}
}

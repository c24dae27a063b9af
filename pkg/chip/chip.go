package chip

import (
	"image"
	"reflect"
)

// Chip is a selectable token shown by a chip input.
type Chip interface {
	// ID returns the identifier used to compare chips.
	ID() string
	// Title returns the primary label.
	Title() string
	// Subtitle returns secondary text, such as an email address.
	Subtitle() string
	// Avatar returns the avatar to display, if any.
	Avatar() Avatar
	// Filterable reports whether the chip may be offered in the filtered list.
	Filterable() bool
}

// Avatar references the image shown next to a chip's title.
// The zero value means the chip has no avatar.
type Avatar struct {
	// URI locates a remote or local image.
	URI string
	// Image is an already decoded image. It takes precedence over URI.
	Image image.Image
}

// IsZero reports whether the avatar is empty.
func (a Avatar) IsZero() bool {
	return a.URI == "" && a.Image == nil
}

// Item is the default Chip implementation.
//
// Items are filterable unless NonFilterable is set.
type Item struct {
	Key           string
	Label         string
	Info          string
	AvatarURI     string
	AvatarImage   image.Image
	NonFilterable bool
}

// ID returns the item's key.
func (i *Item) ID() string { return i.Key }

// Title returns the item's label.
func (i *Item) Title() string { return i.Label }

// Subtitle returns the item's info text.
func (i *Item) Subtitle() string { return i.Info }

// Avatar returns the item's avatar.
func (i *Item) Avatar() Avatar {
	return Avatar{URI: i.AvatarURI, Image: i.AvatarImage}
}

// Filterable reports whether the item may appear in the filtered list.
func (i *Item) Filterable() bool { return !i.NonFilterable }

// SetFilterable changes whether the item may appear in the filtered list.
// Changing the flag of a chip already handed to a data source takes effect on
// the next SetFilterableChips or ReplaceChip.
func (i *Item) SetFilterable(filterable bool) {
	i.NonFilterable = !filterable
}

func (i *Item) String() string {
	return i.Label
}

// Same reports whether a and b denote the same chip.
//
// Chips with a non-empty ID are compared by ID. Otherwise they are compared
// with ==. A chip without an ID whose dynamic type cannot be compared (a
// struct holding a slice, for example) is not the same as any chip.
func Same(a, b Chip) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if id := a.ID(); id != "" {
		return id == b.ID()
	}
	if b.ID() != "" {
		return false
	}
	return isComparable(a) && isComparable(b) && a == b
}

// identifiable reports whether c can be found again with Same.
func identifiable(c Chip) bool {
	return c != nil && (c.ID() != "" || isComparable(c))
}

// isComparable reports whether == on v is defined, so interface comparisons
// holding v cannot panic.
func isComparable(v any) bool {
	return v != nil && reflect.ValueOf(v).Comparable()
}

func indexOf(chips []Chip, c Chip) int {
	for i, other := range chips {
		if Same(other, c) {
			return i
		}
	}
	return -1
}

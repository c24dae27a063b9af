package chip

// DataSource manages the original, filtered, and selected chips of a chip
// input and notifies observers of every change.
type DataSource interface {
	// SetFilterableChips replaces the candidate pool. The filtered list is
	// recomputed from the filterable chips of pool that are not selected.
	// Observers are notified with a nil chip.
	SetFilterableChips(pool []Chip)

	// TakeChip selects c, removing it from the filtered list if present.
	// Chips outside the pool are accepted. Taking a selected chip does nothing.
	TakeChip(c Chip)
	// TakeChipAt selects the filtered chip at position.
	TakeChipAt(position int) error

	// ReplaceChip deselects c. A filterable chip from the pool goes back into
	// the filtered list at its pool position; any other chip is dropped.
	// Replacing a chip that is not selected does nothing.
	ReplaceChip(c Chip)
	// ReplaceChipAt deselects the selected chip at position.
	ReplaceChipAt(position int) error

	// FilteredChip returns the filtered chip at position.
	FilteredChip(position int) (Chip, error)
	// SelectedChip returns the selected chip at position.
	SelectedChip(position int) (Chip, error)

	// OriginalChips returns a copy of the candidate pool.
	OriginalChips() []Chip
	// FilteredChips returns a copy of the filtered chips.
	FilteredChips() []Chip
	// SelectedChips returns a copy of the selected chips.
	SelectedChips() []Chip

	// NotInDataSource reports whether c is absent from all three lists.
	NotInDataSource(c Chip) bool

	// RegisterObserver adds o to the observer set.
	RegisterObserver(o Observer)
	// UnregisterObserver removes o from the observer set.
	UnregisterObserver(o Observer)
	// UnregisterAllObservers empties the observer set.
	UnregisterAllObservers()
}

// Observer is notified after a DataSource changes.
//
// Observers are compared with ==, so implementations should be pointers or
// other comparable types. Observers that cannot be compared are not registered.
type Observer interface {
	// ChipsChanged is called with the chip affected by the change, or nil
	// when the change concerns the whole data source.
	ChipsChanged(affected Chip)
}

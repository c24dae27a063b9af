package chip

import (
	"slices"

	"go.uber.org/zap"

	"github.com/go-drift/chips/pkg/errors"
)

// Option configures a ListDataSource.
type Option func(*ListDataSource)

// WithLogger sets the logger used to trace mutations at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(ds *ListDataSource) {
		if logger != nil {
			ds.logger = logger
		}
	}
}

type listener struct {
	id int
	fn func(Chip)
}

// ListDataSource is a DataSource backed by three slices.
//
// The zero value is not usable; create instances with NewListDataSource.
type ListDataSource struct {
	original []Chip
	filtered []Chip
	selected []Chip

	observers      []Observer
	listeners      []listener
	nextListenerID int

	logger *zap.Logger
}

var _ DataSource = (*ListDataSource)(nil)

// NewListDataSource returns an empty data source.
func NewListDataSource(opts ...Option) *ListDataSource {
	ds := &ListDataSource{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ds)
	}
	return ds
}

// SetFilterableChips replaces the candidate pool and recomputes the filtered
// chips. Chips that are already selected stay selected and are kept out of
// the filtered list. Nil entries are ignored.
func (ds *ListDataSource) SetFilterableChips(pool []Chip) {
	ds.original = make([]Chip, 0, len(pool))
	ds.filtered = make([]Chip, 0, len(pool))
	for _, c := range pool {
		if !identifiable(c) {
			if c != nil {
				ds.logger.Warn("chip without id or comparable type ignored", zap.String("title", c.Title()))
			}
			continue
		}
		ds.original = append(ds.original, c)
		if c.Filterable() && indexOf(ds.selected, c) < 0 && indexOf(ds.filtered, c) < 0 {
			ds.filtered = append(ds.filtered, c)
		}
	}
	ds.logger.Debug("chip pool set",
		zap.Int("original", len(ds.original)),
		zap.Int("filtered", len(ds.filtered)),
	)
	ds.notify(nil)
}

// TakeChip moves c into the selected chips.
func (ds *ListDataSource) TakeChip(c Chip) {
	if c == nil || indexOf(ds.selected, c) >= 0 {
		return
	}
	if !identifiable(c) {
		ds.logger.Warn("chip without id or comparable type ignored", zap.String("title", c.Title()))
		return
	}
	if i := indexOf(ds.filtered, c); i >= 0 {
		ds.filtered = slices.Delete(ds.filtered, i, i+1)
	}
	ds.selected = append(ds.selected, c)
	ds.logger.Debug("chip taken", zap.String("chip", c.ID()), zap.String("title", c.Title()))
	ds.notify(c)
}

// TakeChipAt moves the filtered chip at position into the selected chips.
// It returns an *errors.IndexError if position is out of range.
func (ds *ListDataSource) TakeChipAt(position int) error {
	if err := errors.CheckIndex("chip.TakeChipAt", position, len(ds.filtered)); err != nil {
		return err
	}
	ds.TakeChip(ds.filtered[position])
	return nil
}

// ReplaceChip removes c from the selected chips. Filterable chips from the
// pool are restored to the filtered chips in pool order; all others are
// dropped.
func (ds *ListDataSource) ReplaceChip(c Chip) {
	if c == nil {
		return
	}
	i := indexOf(ds.selected, c)
	if i < 0 {
		return
	}
	// c may be an equal-ID copy of the selected chip.
	taken := ds.selected[i]
	ds.selected = slices.Delete(ds.selected, i, i+1)

	if taken.Filterable() {
		if poolIndex := ds.poolIndex(taken); poolIndex >= 0 {
			ds.restore(ds.original[poolIndex], poolIndex)
		}
	}
	ds.logger.Debug("chip replaced", zap.String("chip", taken.ID()), zap.String("title", taken.Title()))
	ds.notify(taken)
}

// poolIndex returns the position of the first filterable pool chip that is
// the same chip as c, or -1. Non-filterable pool chips sharing c's ID never
// go back into the filtered chips.
func (ds *ListDataSource) poolIndex(c Chip) int {
	return slices.IndexFunc(ds.original, func(o Chip) bool {
		return o.Filterable() && Same(o, c)
	})
}

// restore inserts c into the filtered chips before the first filtered chip
// that comes after it in the pool.
func (ds *ListDataSource) restore(c Chip, poolIndex int) {
	at := len(ds.filtered)
	for i, f := range ds.filtered {
		if ds.poolIndex(f) > poolIndex {
			at = i
			break
		}
	}
	ds.filtered = slices.Insert(ds.filtered, at, c)
}

// ReplaceChipAt removes the selected chip at position.
// It returns an *errors.IndexError if position is out of range.
func (ds *ListDataSource) ReplaceChipAt(position int) error {
	if err := errors.CheckIndex("chip.ReplaceChipAt", position, len(ds.selected)); err != nil {
		return err
	}
	ds.ReplaceChip(ds.selected[position])
	return nil
}

// FilteredChip returns the filtered chip at position.
func (ds *ListDataSource) FilteredChip(position int) (Chip, error) {
	if err := errors.CheckIndex("chip.FilteredChip", position, len(ds.filtered)); err != nil {
		return nil, err
	}
	return ds.filtered[position], nil
}

// SelectedChip returns the selected chip at position.
func (ds *ListDataSource) SelectedChip(position int) (Chip, error) {
	if err := errors.CheckIndex("chip.SelectedChip", position, len(ds.selected)); err != nil {
		return nil, err
	}
	return ds.selected[position], nil
}

// OriginalChips returns a copy of the candidate pool.
func (ds *ListDataSource) OriginalChips() []Chip { return slices.Clone(ds.original) }

// FilteredChips returns a copy of the filtered chips.
func (ds *ListDataSource) FilteredChips() []Chip { return slices.Clone(ds.filtered) }

// SelectedChips returns a copy of the selected chips.
func (ds *ListDataSource) SelectedChips() []Chip { return slices.Clone(ds.selected) }

// NotInDataSource reports whether c is absent from the original, filtered,
// and selected chips.
func (ds *ListDataSource) NotInDataSource(c Chip) bool {
	return indexOf(ds.original, c) < 0 &&
		indexOf(ds.filtered, c) < 0 &&
		indexOf(ds.selected, c) < 0
}

// RegisterObserver adds o to the observer set. Registering an observer twice
// has no effect. Observers whose dynamic type cannot be compared are ignored,
// since they could never be unregistered; use AddListener for those.
func (ds *ListDataSource) RegisterObserver(o Observer) {
	if !isComparable(o) {
		if o != nil {
			ds.logger.Warn("observer with non-comparable type ignored")
		}
		return
	}
	if slices.Contains(ds.observers, o) {
		return
	}
	ds.observers = append(ds.observers, o)
}

// UnregisterObserver removes o from the observer set.
func (ds *ListDataSource) UnregisterObserver(o Observer) {
	if !isComparable(o) {
		return
	}
	if i := slices.Index(ds.observers, o); i >= 0 {
		ds.observers = slices.Delete(ds.observers, i, i+1)
	}
}

// UnregisterAllObservers removes every observer and listener.
func (ds *ListDataSource) UnregisterAllObservers() {
	ds.observers = nil
	ds.listeners = nil
}

// AddListener adds a callback that is called after every change.
// Returns an unsubscribe function.
func (ds *ListDataSource) AddListener(fn func(affected Chip)) func() {
	if fn == nil {
		return func() {}
	}
	id := ds.nextListenerID
	ds.nextListenerID++
	ds.listeners = append(ds.listeners, listener{id: id, fn: fn})
	return func() {
		ds.listeners = slices.DeleteFunc(ds.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

// notify calls observers, then listeners, in registration order. The sets are
// copied first so callbacks may unregister themselves.
func (ds *ListDataSource) notify(affected Chip) {
	observers := slices.Clone(ds.observers)
	listeners := slices.Clone(ds.listeners)
	for _, o := range observers {
		o.ChipsChanged(affected)
	}
	for _, l := range listeners {
		l.fn(affected)
	}
}

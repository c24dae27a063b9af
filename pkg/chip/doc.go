// Package chip provides the data model behind chip input controls.
//
// A chip is a small selectable token such as a tag or a contact. Chip input
// widgets show the chips a user has picked next to a list of remaining
// candidates, and let the user move chips between the two. This package holds
// that state and leaves rendering to the UI layer.
//
// # Data Source
//
// A [DataSource] tracks three ordered sequences:
//
//   - Original chips: the candidate pool set with SetFilterableChips.
//   - Filtered chips: the filterable pool chips that are not selected. These
//     are the options a widget offers to the user.
//   - Selected chips: the chips the user picked. Chips from outside the pool,
//     such as free-text entries, may be selected too.
//
// Filtered and selected chips never overlap. Taking a chip moves it from the
// filtered list into the selected list; replacing it moves it back, at the
// position it has in the pool. A replaced chip that is not filterable, or did
// not come from the pool, is dropped.
//
//	ds := chip.NewListDataSource()
//	ds.SetFilterableChips([]chip.Chip{
//	    &chip.Item{Key: "go", Label: "Go"},
//	    &chip.Item{Key: "rust", Label: "Rust"},
//	})
//	ds.TakeChip(ds.OriginalChips()[0])
//
// # Observers
//
// Every mutation notifies registered observers synchronously, after the state
// has been updated. The affected chip is passed along, or nil for bulk changes
// such as SetFilterableChips:
//
//	ds.RegisterObserver(myWidgetState)
//	unsubscribe := ds.AddListener(func(affected chip.Chip) {
//	    setState(nil)
//	})
//	defer unsubscribe()
//
// # Threading
//
// A ListDataSource is not safe for concurrent use. Confine it to the UI
// goroutine or guard the whole instance with a mutex.
package chip

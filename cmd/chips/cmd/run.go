package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/chips/pkg/chip"
	"github.com/go-drift/chips/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Replay chip selections against a pool",
		Long: `Replay chip selections against a pool file.

Operations are applied in order:

  take:<id>      Select the chip with the given id. Unknown ids are
                 selected as free-text chips.
  take@<n>       Select the available chip at position n.
  replace:<id>   Deselect the chip with the given id.
  replace@<n>    Deselect the selected chip at position n.
  reset          Reload the pool, keeping the current selection.

Every change notification is printed, starting with the initial pool
update. Invalid positions and panics are reported and the remaining
operations still run.`,
		Usage: "chips run <pool.yaml> <op>...",
		Run:   runReplay,
	})
}

type opKind int

const (
	opTake opKind = iota
	opReplace
	opReset
)

type op struct {
	kind     opKind
	id       string
	position int
	byIndex  bool
	raw      string
}

func parseOp(s string) (op, error) {
	if s == "reset" {
		return op{kind: opReset, raw: s}, nil
	}

	var name, sep, rest string
	if i := strings.IndexAny(s, ":@"); i >= 0 {
		name, sep, rest = s[:i], s[i:i+1], s[i+1:]
	} else {
		return op{}, fmt.Errorf("invalid operation %q", s)
	}

	o := op{raw: s}
	switch name {
	case "take":
		o.kind = opTake
	case "replace":
		o.kind = opReplace
	default:
		return op{}, fmt.Errorf("unknown operation %q", name)
	}

	if sep == "@" {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return op{}, fmt.Errorf("invalid position in %q: %w", s, err)
		}
		o.position = n
		o.byIndex = true
		return o, nil
	}
	if rest == "" {
		return op{}, fmt.Errorf("missing chip id in %q", s)
	}
	o.id = rest
	return o, nil
}

// printObserver prints every change notification.
type printObserver struct{}

func (*printObserver) ChipsChanged(affected chip.Chip) {
	if affected == nil {
		fmt.Fprintln(stdout, "~ pool updated")
		return
	}
	fmt.Fprintf(stdout, "~ %s (%s)\n", affected.Title(), affected.ID())
}

func runReplay(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("run requires a pool file")
	}
	ops := make([]op, 0, len(args)-1)
	for _, a := range args[1:] {
		o, err := parseOp(a)
		if err != nil {
			return err
		}
		ops = append(ops, o)
	}

	ds, err := openPool(args[0], &printObserver{})
	if err != nil {
		return err
	}
	pool := ds.OriginalChips()
	defer ds.UnregisterAllObservers()

	for _, o := range ops {
		name := "chips.run " + o.raw
		var err error
		if errors.Guard(name, func() { err = apply(ds, pool, o) }) {
			continue
		}
		if err != nil {
			errors.Report(&errors.ChipError{Op: name, Err: err})
		}
	}

	fmt.Fprintln(stdout)
	printChips("Selected", ds.SelectedChips())
	printChips("Available", ds.FilteredChips())
	return nil
}

func apply(ds *chip.ListDataSource, pool []chip.Chip, o op) error {
	switch o.kind {
	case opReset:
		ds.SetFilterableChips(pool)
		return nil
	case opTake:
		if o.byIndex {
			return ds.TakeChipAt(o.position)
		}
		ds.TakeChip(lookup(ds, pool, o.id))
	case opReplace:
		if o.byIndex {
			return ds.ReplaceChipAt(o.position)
		}
		ds.ReplaceChip(lookup(ds, pool, o.id))
	}
	return nil
}

// lookup finds the chip with id among the pool and the selection. Unknown ids
// become non-filterable free-text chips.
func lookup(ds *chip.ListDataSource, pool []chip.Chip, id string) chip.Chip {
	for _, c := range pool {
		if c.ID() == id {
			return c
		}
	}
	for _, c := range ds.SelectedChips() {
		if c.ID() == id {
			return c
		}
	}
	return &chip.Item{Key: id, Label: id, NonFilterable: true}
}

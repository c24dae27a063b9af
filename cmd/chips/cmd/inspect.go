package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "List the chips of a pool file",
		Long: `List the chips of a pool file.

Prints the full pool followed by the chips a chip input would offer,
which excludes chips marked "filterable: false".`,
		Usage: "chips inspect <pool.yaml>",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("inspect requires exactly one pool file")
	}
	ds, err := openPool(args[0])
	if err != nil {
		return err
	}
	printChips("Pool", ds.OriginalChips())
	printChips("Available", ds.FilteredChips())
	return nil
}

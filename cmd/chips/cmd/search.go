package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/chips/pkg/chip"
)

func init() {
	RegisterCommand(&Command{
		Name:  "search",
		Short: "Fuzzy search the available chips",
		Long: `Fuzzy search the available chips of a pool file.

Titles and subtitles are matched ignoring case and diacritics. Results are
ranked best first; the leading number is the position to pass to take@<n>.`,
		Usage: "chips search <pool.yaml> <query>",
		Run:   runSearch,
	})
}

func runSearch(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("search requires a pool file and a query")
	}
	ds, err := openPool(args[0])
	if err != nil {
		return err
	}

	matches := chip.Search(ds, strings.Join(args[1:], " "))
	if len(matches) == 0 {
		fmt.Fprintln(stdout, "No matches")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(stdout, "  %2d  %-12s %s\n", m.Position, m.Chip.ID(), highlight(m))
	}
	return nil
}

// highlight brackets the matched characters of the match text.
func highlight(m chip.Match) string {
	if len(m.MatchedIndexes) == 0 {
		return m.Text
	}
	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		matched[i] = true
	}
	var b strings.Builder
	for i, r := range m.Text {
		if matched[i] {
			b.WriteString("[" + string(r) + "]")
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

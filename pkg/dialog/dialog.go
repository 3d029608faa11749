// Package dialog is the synchronous selection prompt: a checkbox per
// report action plus a select-all toggle, blocking the caller until the
// user confirms a non-empty selection.
package dialog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Option is one selectable action.
type Option struct {
	Name        string
	Description string
}

// Prompt renders the checkbox list on out and reads toggles from in until
// the user confirms. Confirming with nothing selected prints a warning and
// re-prompts. Returns the selected option names.
func Prompt(in io.Reader, out io.Writer, options []Option) (mapset.Set[string], error) {
	scanner := bufio.NewScanner(in)
	selected := make([]bool, len(options))

	for {
		render(out, options, selected)
		fmt.Fprintf(out, "Toggle 1-%d, (a)ll, enter to run: ", len(options))

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch line {
		case "a", "all":
			toggleAll(selected)
		case "", "d", "done", "run":
			set := collect(options, selected)
			if set.Cardinality() == 0 {
				fmt.Fprintln(out, "Warning: no reports selected. Select at least one report to continue.")
				continue
			}
			return set, nil
		default:
			for _, tok := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' }) {
				n, err := strconv.Atoi(tok)
				if err != nil || n < 1 || n > len(options) {
					fmt.Fprintf(out, "Invalid choice %q\n", tok)
					continue
				}
				selected[n-1] = !selected[n-1]
			}
		}
	}
}

func render(out io.Writer, options []Option, selected []bool) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Select reports to run:")
	for i, opt := range options {
		mark := " "
		if selected[i] {
			mark = "x"
		}
		fmt.Fprintf(out, "  [%s] %d. %-26s %s\n", mark, i+1, opt.Name, opt.Description)
	}
}

// toggleAll implements the select-all checkbox: everything on unless
// everything already was, then everything off.
func toggleAll(selected []bool) {
	all := true
	for _, s := range selected {
		if !s {
			all = false
			break
		}
	}
	for i := range selected {
		selected[i] = !all
	}
}

func collect(options []Option, selected []bool) mapset.Set[string] {
	set := mapset.NewSet[string]()
	for i, opt := range options {
		if selected[i] {
			set.Add(opt.Name)
		}
	}
	return set
}

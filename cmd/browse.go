package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dutylog/core/model"
	"github.com/kilianp07/dutylog/core/pager"
)

var browseCmd = &cobra.Command{
	Use:   "browse <plan>",
	Short: "Page through the days of a plan (n: next, p: previous, <number>: jump, q: quit)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if args[0] == "-" {
		return fmt.Errorf("browse reads commands from stdin, pass the plan as a file")
	}
	s, _, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeSession(cmd, s)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.Summary())
	if s.Pager.Len() == 0 {
		fmt.Fprintln(out, "no days to show")
		return nil
	}
	s.Pager = browse(cmd.InOrStdin(), out, s.Pager)
	return nil
}

// browse runs the command loop and returns the pager as left by the user.
func browse(in io.Reader, out io.Writer, p pager.Pager) pager.Pager {
	show(out, p)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		switch cmd := strings.TrimSpace(sc.Text()); cmd {
		case "q", "quit":
			return p
		case "n", "next", "":
			if !p.HasNext() {
				fmt.Fprintln(out, "already on the last day")
				continue
			}
			p = p.Next()
		case "p", "prev":
			if !p.HasPrev() {
				fmt.Fprintln(out, "already on the first day")
				continue
			}
			p = p.Prev()
		default:
			n, err := strconv.Atoi(cmd)
			if err != nil {
				fmt.Fprintf(out, "unknown command %q\n", cmd)
				continue
			}
			p = p.At(n - 1)
		}
		show(out, p)
	}
	return p
}

func show(out io.Writer, p pager.Pager) {
	c := p.Current()
	fmt.Fprintf(out, "Day %d/%d  %s\n", p.Index()+1, p.Len(), c.Date)
	for _, r := range model.Rows() {
		fmt.Fprintf(out, "  %-24s %5.2f h\n", r.String(), c.Totals[r])
	}
	for _, a := range c.Annotations {
		fmt.Fprintf(out, "  - %s\n", a.Value)
	}
}

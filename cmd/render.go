package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dutylog/app/plugins"
)

var (
	renderDay    int
	renderFormat string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render <plan>",
	Short: "Render one day of a plan as SVG or PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntVarP(&renderDay, "day", "d", 1, "day number, starting at 1")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "svg", "output format ("+strings.Join(plugins.Formats(), ", ")+")")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	s, _, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeSession(cmd, s)

	var buf bytes.Buffer
	if err := s.Render(commandContext(cmd), &buf, renderDay-1, renderFormat); err != nil {
		return err
	}
	if renderOutput == "-" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(renderOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", renderOutput, err)
	}
	return nil
}

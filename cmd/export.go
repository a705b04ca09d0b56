package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dutylog/core/export"
	"github.com/kilianp07/dutylog/internal/eventbus"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <plan>",
	Short: "Write every day of a plan as one landscape PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file, - for stdout (default from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, cfg, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeSession(cmd, s)

	out := exportOutput
	if out == "" {
		out = cfg.Export.Output
	}
	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(errOut, s.Summary())

	bus := eventbus.NewTyped[export.Progress](len(s.Charts))
	sub := bus.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range sub {
			fmt.Fprintf(errOut, "page %d/%d (%dx%d)\n", p.Index+1, p.Total, p.Width, p.Height)
		}
	}()

	var buf bytes.Buffer
	runID, err := s.Export(ctx, &buf, bus)
	bus.Close()
	<-done
	if err != nil {
		return fmt.Errorf("export %s: %w", runID, err)
	}

	if out == "-" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(errOut, "wrote %s (%d pages)\n", out, len(s.Charts))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/dutylog/pkg/overlay"
)

var markersFormat string

var markersCmd = &cobra.Command{
	Use:   "markers <plan>",
	Short: "Print the map overlay of a plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runMarkers,
}

func init() {
	markersCmd.Flags().StringVarP(&markersFormat, "format", "f", "json", "output format (json, csv)")
	rootCmd.AddCommand(markersCmd)
}

func runMarkers(cmd *cobra.Command, args []string) error {
	s, _, err := openSession(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeSession(cmd, s)

	switch markersFormat {
	case "json":
		return overlay.WriteJSON(cmd.OutOrStdout(), s.Trip)
	case "csv":
		return overlay.WriteCSV(cmd.OutOrStdout(), s.Markers)
	default:
		return fmt.Errorf("unsupported format: %s", markersFormat)
	}
}

package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/extrepo/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <apk>",
		Short: "Print the metadata extracted from a single APK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			tool, _ := cmd.Flags().GetString("aapt")

			meta, err := c.app.Inspect(cmd.Context(), app.InspectOptions{
				ConfigPath: configPath,
				Tool:       tool,
				APK:        args[0],
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			if err := enc.Encode(meta); err != nil {
				return zerr.Wrap(err, "failed to encode metadata")
			}
			return nil
		},
	}
	cmd.Flags().String("aapt", "", "Path to the aapt or aapt2 executable")
	return cmd
}

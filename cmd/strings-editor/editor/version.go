package editor

import (
	"fmt"

	"github.com/canonical/android-strings/internal/consts"
	"github.com/spf13/cobra"
)

func (a *App) installVersion() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Returns version of the editor and exits",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return a.getVersion() },
	}
	a.rootCmd.AddCommand(cmd)
}

// getVersion prints the current editor version.
func (a *App) getVersion() (err error) {
	fmt.Fprintf(a.opts.out, "%s\t%s\n", cmdName, consts.Version)
	return nil
}

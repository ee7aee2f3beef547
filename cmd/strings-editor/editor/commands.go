package editor

import (
	"github.com/canonical/android-strings/internal/session"
	"github.com/spf13/cobra"
)

// installCommands adds the non interactive add, remove and edit commands.
func (a *App) installCommands() {
	a.rootCmd.AddCommand(&cobra.Command{
		Use:   "add NAME VALUE",
		Short: "Add a string to every locale file not holding it yet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.apply(session.Command{Action: session.Add, Name: args[0], Value: args[1]})
		},
	})

	a.rootCmd.AddCommand(&cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a string from every locale file holding it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.apply(session.Command{Action: session.Remove, Name: args[0]})
		},
	})

	a.rootCmd.AddCommand(&cobra.Command{
		Use:   "edit NAME VALUE",
		Short: "Change the value of a string in every locale file holding it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.apply(session.Command{Action: session.Edit, Name: args[0], Value: args[1]})
		},
	})
}

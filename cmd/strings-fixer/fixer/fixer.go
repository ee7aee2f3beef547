// Package fixer represents the CLI normalizing quotes and pretty printing every locale strings file.
package fixer

import (
	"fmt"
	"io"
	"os"

	"github.com/canonical/android-strings/internal/config"
	"github.com/canonical/android-strings/internal/consts"
	"github.com/canonical/android-strings/internal/resources"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cmdName is the binary name for the fixer.
const cmdName = "strings-fixer"

// App encapsulate commands and options of the fixer, which can be controlled by env variables and config files.
type App struct {
	rootCmd cobra.Command
	viper   *viper.Viper
	config  config.Config

	out io.Writer
}

type options struct {
	out io.Writer
}

type option func(*options)

// New registers commands and return a new App.
func New(o ...option) *App {
	opts := options{out: os.Stdout}
	for _, f := range o {
		f(&opts)
	}

	a := App{out: opts.out}
	a.rootCmd = cobra.Command{
		Use:   cmdName,
		Short: "Fix Android string resources of every locale",
		Long: `Turn escaped quotes into literal ones and pretty print, with an indentation of 4 spaces,
the strings.xml file of every values* locale directory.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			// Force a visit of the local flags so persistent flags for all parents are merged.
			cmd.LocalFlags()

			// command parsing has been successful. Returns to not print usage anymore.
			a.rootCmd.SilenceUsage = true

			a.config, err = config.Load(cmdName, cmd, a.viper)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fix()
		},
		// We display usage error ourselves
		SilenceErrors: true,
	}
	a.viper = viper.New()

	config.InstallVerbosityFlag(&a.rootCmd, a.viper)
	config.InstallConfigFlag(&a.rootCmd)
	config.InstallResDirFlag(&a.rootCmd, a.viper)

	// subcommands
	a.installVersion()

	return &a
}

// fix rewrites every strings file found in the resource directory.
func (a *App) fix() error {
	c, err := resources.Discover(a.config.ResDir)
	if err != nil {
		return err
	}

	return c.Fix(a.out)
}

func (a *App) installVersion() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Returns version of the fixer and exits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "%s\t%s\n", cmdName, consts.Version)
			return nil
		},
	}
	a.rootCmd.AddCommand(cmd)
}

// Run executes the command and associated process. It returns an error on syntax/usage error.
func (a *App) Run() error {
	return a.rootCmd.Execute()
}

// UsageError returns if the error is a command parsing or runtime one.
func (a *App) UsageError() bool {
	return !a.rootCmd.SilenceUsage
}

// RootCmd returns a copy of the root command for the app. Shouldn't be in general necessary apart when running generators.
func (a *App) RootCmd() cobra.Command {
	return a.rootCmd
}

// SetArgs changes the root command args. Shouldn't be in general necessary apart for tests.
func (a *App) SetArgs(args ...string) {
	a.rootCmd.SetArgs(args)
}

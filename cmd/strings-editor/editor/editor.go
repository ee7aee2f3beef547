// Package editor represents the CLI adding, removing and editing a string in every locale file at once.
package editor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/canonical/android-strings/internal/config"
	"github.com/canonical/android-strings/internal/prompt"
	"github.com/canonical/android-strings/internal/resources"
	"github.com/canonical/android-strings/internal/session"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// cmdName is the binary name for the editor.
const cmdName = "strings-editor"

// App encapsulate commands and options of the editor, which can be controlled by env variables and config files.
type App struct {
	rootCmd cobra.Command
	viper   *viper.Viper
	config  config.Config

	opts options

	ctx    context.Context
	cancel context.CancelFunc
}

type options struct {
	prompter session.Prompter
	out      io.Writer
}

type option func(*options)

// New registers commands and return a new App.
func New(o ...option) *App {
	a := App{opts: options{out: os.Stdout}}
	for _, f := range o {
		f(&a.opts)
	}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	a.rootCmd = cobra.Command{
		Use:   fmt.Sprintf("%s [COMMAND]", cmdName),
		Short: "Edit Android string resources of every locale",
		Long: `Add, remove or edit a string in the strings.xml file of every values* locale directory at once.

Without any command, the action, the name and the value are asked interactively,
until you decline to continue. Files are only written once you are done.`,
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
			return a.interactive()
		},
		// We display usage error ourselves
		SilenceErrors: true,
	}
	a.viper = viper.New()

	config.InstallVerbosityFlag(&a.rootCmd, a.viper)
	config.InstallConfigFlag(&a.rootCmd)
	config.InstallResDirFlag(&a.rootCmd, a.viper)
	a.installPlainFlag()

	// subcommands
	a.installCommands()
	a.installVersion()

	return &a
}

func (a *App) installPlainFlag() {
	a.rootCmd.PersistentFlags().Bool("plain", false, "ask questions line by line, even on a terminal")
	if err := a.viper.BindPFlag("plain", a.rootCmd.PersistentFlags().Lookup("plain")); err != nil {
		log.Warning(err)
	}
}

// interactive runs the editing session until the user is done, and then saves all files.
func (a *App) interactive() error {
	c, err := resources.Discover(a.config.ResDir)
	if err != nil {
		return err
	}

	return session.New(c, a.prompter(), a.opts.out).Run(a.ctx)
}

// apply runs a single command on every file, and then saves all files.
func (a *App) apply(cmd session.Command) error {
	c, err := resources.Discover(a.config.ResDir)
	if err != nil {
		return err
	}

	session.New(c, nil, a.opts.out).Apply(cmd)
	return c.Save(a.opts.out)
}

// prompter returns the prompter set by options, or one reading from the standard input.
func (a *App) prompter() session.Prompter {
	if a.opts.prompter != nil {
		return a.opts.prompter
	}
	if a.config.Plain || !term.IsTerminal(int(os.Stdin.Fd())) {
		return prompt.NewLine(os.Stdin, a.opts.out)
	}
	return prompt.NewTerminal(os.Stdin, a.opts.out)
}

// Run executes the command and associated process. It returns an error on syntax/usage error.
func (a *App) Run() error {
	return a.rootCmd.Execute()
}

// UsageError returns if the error is a command parsing or runtime one.
func (a *App) UsageError() bool {
	return !a.rootCmd.SilenceUsage
}

// Quit stops any ongoing interactive session, without saving.
func (a *App) Quit() {
	a.cancel()
}

// RootCmd returns a copy of the root command for the app. Shouldn't be in general necessary apart when running generators.
func (a *App) RootCmd() cobra.Command {
	return a.rootCmd
}

// SetArgs changes the root command args. Shouldn't be in general necessary apart for tests.
func (a *App) SetArgs(args ...string) {
	a.rootCmd.SetArgs(args)
}

// Config returns the configuration for test purposes.
func (a *App) Config() config.Config {
	return a.config
}

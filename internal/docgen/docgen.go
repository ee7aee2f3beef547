// Package docgen generates the shell completions and man pages of the command line tools.
package docgen

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/ubuntu/decorate"
)

// App encapsulate commands and options of a CLI.
type App interface {
	RootCmd() cobra.Command
}

// Completions writes bash, zsh and fish completion files for each app, in a structured hierarchy in dir.
func Completions(dir string, apps ...App) (err error) {
	defer decorate.OnError(&err, "couldn't generate completions")

	bashCompDir := filepath.Join(dir, "bash-completion", "completions")
	zshCompDir := filepath.Join(dir, "zsh", "site-functions")
	fishCompDir := filepath.Join(dir, "fish", "vendor_completions.d")
	for _, d := range []string{bashCompDir, zshCompDir, fishCompDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("couldn't create completion directory %q: %v", d, err)
		}
	}

	for _, a := range apps {
		cmd := a.RootCmd()
		log.Debugf("Generating completions for %s", cmd.Name())

		if err := cmd.GenBashCompletionFileV2(filepath.Join(bashCompDir, cmd.Name()), true); err != nil {
			return fmt.Errorf("couldn't create bash completion for %s: %v", cmd.Name(), err)
		}
		if err := cmd.GenZshCompletionFile(filepath.Join(zshCompDir, "_"+cmd.Name())); err != nil {
			return fmt.Errorf("couldn't create zsh completion for %s: %v", cmd.Name(), err)
		}
		if err := cmd.GenFishCompletionFile(filepath.Join(fishCompDir, cmd.Name()+".fish"), true); err != nil {
			return fmt.Errorf("couldn't create fish completion for %s: %v", cmd.Name(), err)
		}
	}

	return nil
}

// ManPages writes the man pages of each app and its subcommands in the man1 directory of dir.
func ManPages(dir string, apps ...App) (err error) {
	defer decorate.OnError(&err, "couldn't generate man pages")

	out := filepath.Join(dir, "man", "man1")
	if err := os.MkdirAll(out, 0755); err != nil {
		return fmt.Errorf("couldn't create man pages directory: %v", err)
	}

	for _, a := range apps {
		cmd := a.RootCmd()
		cmd.InitDefaultHelpCmd()

		header := &doc.GenManHeader{
			Title:   cmd.Name(),
			Section: "1",
			Source:  "android-strings",
		}
		if err := doc.GenManTree(&cmd, header, out); err != nil {
			return fmt.Errorf("couldn't generate man pages for %s: %v", cmd.Name(), err)
		}
	}

	return nil
}

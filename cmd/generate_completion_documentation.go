//go:build tools

package main

import (
	"log"
	"os"

	"github.com/canonical/android-strings/cmd/strings-editor/editor"
	"github.com/canonical/android-strings/cmd/strings-fixer/fixer"
	"github.com/canonical/android-strings/internal/docgen"
)

const usage = `Usage of %s:
   completion DIRECTORY
     Create completions files in a structured hierarchy in DIRECTORY.
   man DIRECTORY
     Create man pages files in a structured hierarchy in DIRECTORY.
`

func main() {
	if len(os.Args) < 3 {
		log.Fatalf(usage, os.Args[0])
	}

	var err error
	switch os.Args[1] {
	case "completion":
		err = docgen.Completions(os.Args[2], editor.New(), fixer.New())
	case "man":
		err = docgen.ManPages(os.Args[2], editor.New(), fixer.New())
	default:
		log.Fatalf(usage, os.Args[0])
	}
	if err != nil {
		log.Fatal(err)
	}
}

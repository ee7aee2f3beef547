// Package main is the strings-fixer entry point.
package main

import (
	"os"

	"github.com/canonical/android-strings/cmd/strings-fixer/fixer"
	"github.com/canonical/android-strings/internal/consts"
	log "github.com/sirupsen/logrus"
)

func main() {
	a := fixer.New()
	os.Exit(run(a))
}

type app interface {
	Run() error
	UsageError() bool
}

func run(a app) int {
	log.SetFormatter(&log.TextFormatter{
		DisableLevelTruncation: true,
		DisableTimestamp:       true,
	})

	log.Infof("Starting strings fixer version %s", consts.Version)

	if err := a.Run(); err != nil {
		log.Error(err)

		if a.UsageError() {
			return 2
		}
		return 1
	}

	return 0
}

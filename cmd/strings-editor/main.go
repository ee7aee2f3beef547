// Package main is the strings-editor entry point.
package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/canonical/android-strings/cmd/strings-editor/editor"
	"github.com/canonical/android-strings/internal/consts"
	log "github.com/sirupsen/logrus"
)

func main() {
	a := editor.New()
	os.Exit(run(a))
}

type app interface {
	Run() error
	UsageError() bool
	Quit()
}

func run(a app) int {
	defer installSignalHandler(a)()

	log.SetFormatter(&log.TextFormatter{
		DisableLevelTruncation: true,
		DisableTimestamp:       true,
	})

	log.Infof("Starting strings editor version %s", consts.Version)

	if err := a.Run(); err != nil {
		log.Error(err)

		if a.UsageError() {
			return 2
		}
		return 1
	}

	return 0
}

// installSignalHandler quits the app on SIGINT and SIGTERM. Pending edits are lost.
func installSignalHandler(a app) func() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			switch v, ok := <-c; v {
			case syscall.SIGINT, syscall.SIGTERM:
				a.Quit()
				return
			default:
				// channel was closed: we exited
				if !ok {
					return
				}
			}
		}
	}()

	return func() {
		signal.Stop(c)
		close(c)
		wg.Wait()
	}
}

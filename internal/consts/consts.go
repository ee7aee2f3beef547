// Package consts defines the constants used by the project
package consts

import (
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultLogLevel is the default logging level selected without any option.
	DefaultLogLevel = log.WarnLevel

	// DefaultResDir is the resource directory scanned for locale files, relative to the working directory.
	DefaultResDir = "composeApp/src/androidMain/res"

	// EnvPrefix is the prefix of the environment variables overriding the configuration.
	EnvPrefix = "ASTR"
)

// Version is the version of the tools
//
// It is set at build time using the -ldflags option.
var Version = "Dev"

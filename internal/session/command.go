// Package session applies string commands to every locale file of a resource tree,
// and drives the interactive add, remove and edit loop.
package session

import (
	"fmt"
	"strings"

	"github.com/canonical/android-strings/internal/resources"
	log "github.com/sirupsen/logrus"
)

// Action is the kind of change requested on a string.
type Action int

const (
	// Add creates the string where it does not exist yet.
	Add Action = iota
	// Remove deletes the string wherever it exists.
	Remove
	// Edit changes the value of the string wherever it exists.
	Edit
)

// ParseAction returns the action selected by answer: "s" to remove, "e" to edit.
// Anything else selects Add.
func ParseAction(answer string) Action {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s":
		return Remove
	case "e":
		return Edit
	default:
		return Add
	}
}

func (a Action) String() string {
	switch a {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Edit:
		return "edit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Command is a change to apply on a string of every document.
type Command struct {
	Action Action
	Name   string
	// Value is ignored when removing.
	Value string
}

// Outcome is the result of a command on a single document.
type Outcome int

const (
	// Added means the string was created.
	Added Outcome = iota
	// Duplicate means the string already existed and was left untouched.
	Duplicate
	// Removed means the string was deleted.
	Removed
	// Updated means the value of the string was replaced.
	Updated
	// NotFound means the string to remove or edit does not exist.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Duplicate:
		return "duplicate"
	case Removed:
		return "removed"
	case Updated:
		return "updated"
	case NotFound:
		return "not found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of a command on the document at Path.
type Result struct {
	Path    string
	Name    string
	Outcome Outcome
}

// String returns the status line reported to the user.
func (r Result) String() string {
	switch r.Outcome {
	case Added:
		return fmt.Sprintf("String '%s' added to %s", r.Name, r.Path)
	case Duplicate:
		return fmt.Sprintf("String '%s' already exists in %s", r.Name, r.Path)
	case Removed:
		return fmt.Sprintf("String '%s' removed from %s", r.Name, r.Path)
	case Updated:
		return fmt.Sprintf("String '%s' updated in %s", r.Name, r.Path)
	default:
		return fmt.Sprintf("String '%s' not found in %s", r.Name, r.Path)
	}
}

// Dispatch sanitizes the name of cmd and applies cmd to every document of c, independently.
// It returns one result per document, in collection order.
func Dispatch(c *resources.Collection, cmd Command) []Result {
	name := resources.SanitizeName(cmd.Name)
	if name != cmd.Name {
		log.Infof("Using sanitized name %q for %q", name, cmd.Name)
	}

	results := make([]Result, 0, c.Len())
	for _, d := range c.Documents() {
		r := Result{Path: d.Path(), Name: name}

		switch cmd.Action {
		case Remove:
			r.Outcome = outcome(d.Remove(name), Removed, NotFound)
		case Edit:
			r.Outcome = outcome(d.Edit(name, cmd.Value), Updated, NotFound)
		default:
			r.Outcome = outcome(d.Add(name, cmd.Value), Added, Duplicate)
		}

		log.WithField("locale", d.Locale()).Debugf("%s %q on %q: %s", cmd.Action, name, d.Path(), r.Outcome)
		results = append(results, r)
	}

	return results
}

// Found reports whether any document had the string removed or updated.
func Found(results []Result) bool {
	for _, r := range results {
		if r.Outcome == Removed || r.Outcome == Updated {
			return true
		}
	}
	return false
}

func outcome(ok bool, success, failure Outcome) Outcome {
	if ok {
		return success
	}
	return failure
}

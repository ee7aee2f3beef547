package session_test

import (
	"path/filepath"
	"testing"

	"github.com/canonical/android-strings/internal/resources"
	"github.com/canonical/android-strings/internal/session"
	"github.com/canonical/android-strings/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		answer string

		want session.Action
	}{
		"a adds":                 {answer: "a", want: session.Add},
		"s removes":              {answer: "s", want: session.Remove},
		"e edits":                {answer: "e", want: session.Edit},
		"Upper case is accepted": {answer: "S", want: session.Remove},
		"Spaces are trimmed":     {answer: "  e \t", want: session.Edit},
		"Empty answer adds":      {answer: "", want: session.Add},
		"Unknown answer adds":    {answer: "remove", want: session.Add},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, session.ParseAction(tc.answer), "Unexpected action")
		})
	}
}

// dispatchResult is what a command did to a single locale file.
type dispatchResult struct {
	Dir     string `yaml:"dir"`
	Name    string `yaml:"name"`
	Outcome string `yaml:"outcome"`
	Strings int    `yaml:"strings"`
	Value   string `yaml:"value,omitempty"`
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		files map[string]string
		cmd   session.Command

		wantFound bool
	}{
		"Add only where the name is missing": {
			files: map[string]string{
				"values":    testutils.StringsXML("hello", "Hello"),
				"values-fr": testutils.StringsXML("app_name", "Démo"),
			},
			cmd: session.Command{Action: session.Add, Name: "hello", Value: "Bonjour &quot;toi&quot;"},
		},
		"Add sanitizes the name": {
			files: map[string]string{
				"values": testutils.StringsXML("app_name", "Demo"),
			},
			cmd: session.Command{Action: session.Add, Name: "1 new string", Value: "New"},
		},
		"Remove from the only file holding the name": {
			files: map[string]string{
				"values":    testutils.StringsXML("app_name", "Demo", "bye", "Bye"),
				"values-de": testutils.StringsXML("app_name", "Demo"),
				"values-fr": testutils.StringsXML("app_name", "Démo"),
			},
			cmd:       session.Command{Action: session.Remove, Name: "bye"},
			wantFound: true,
		},
		"Remove sanitizes the name": {
			files: map[string]string{
				"values": testutils.StringsXML("good_bye", "Bye"),
			},
			cmd:       session.Command{Action: session.Remove, Name: "good bye"},
			wantFound: true,
		},
		"Remove missing name": {
			files: map[string]string{
				"values": testutils.StringsXML("app_name", "Demo"),
			},
			cmd: session.Command{Action: session.Remove, Name: "missing"},
		},
		"Edit every file holding the name": {
			files: map[string]string{
				"values":    testutils.StringsXML("app_name", "Demo", "hello", "Hello"),
				"values-fr": testutils.StringsXML("app_name", "Démo"),
			},
			cmd:       session.Command{Action: session.Edit, Name: "app_name", Value: "&quot;Demo&quot;"},
			wantFound: true,
		},
		"Edit missing name": {
			files: map[string]string{
				"values": testutils.StringsXML("app_name", "Demo"),
			},
			cmd: session.Command{Action: session.Edit, Name: "missing", Value: "Value"},
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			resDir := t.TempDir()
			for dir, content := range tc.files {
				testutils.WriteStringsFile(t, resDir, dir, content)
			}
			c, err := resources.Discover(resDir)
			require.NoError(t, err, "Setup: Discover should return no error")

			results := session.Dispatch(c, tc.cmd)
			require.Len(t, results, c.Len(), "Dispatch should return one result per document")
			require.Equal(t, tc.wantFound, session.Found(results), "Unexpected Found result")

			var got []dispatchResult
			for i, r := range results {
				d := c.Documents()[i]
				require.Equal(t, d.Path(), r.Path, "Results should follow the collection order")

				value, _ := d.Lookup(r.Name)
				got = append(got, dispatchResult{
					Dir:     filepath.Base(filepath.Dir(r.Path)),
					Name:    r.Name,
					Outcome: r.Outcome.String(),
					Strings: d.Len(),
					Value:   value,
				})
			}

			want := testutils.LoadWithUpdateFromGoldenYAML(t, got)
			require.Equal(t, want, got, "Dispatch did not behave as expected")
		})
	}
}

func TestResultString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		outcome session.Outcome

		want string
	}{
		"Added":     {outcome: session.Added, want: "String 'hello' added to res/values/strings.xml"},
		"Duplicate": {outcome: session.Duplicate, want: "String 'hello' already exists in res/values/strings.xml"},
		"Removed":   {outcome: session.Removed, want: "String 'hello' removed from res/values/strings.xml"},
		"Updated":   {outcome: session.Updated, want: "String 'hello' updated in res/values/strings.xml"},
		"Not found": {outcome: session.NotFound, want: "String 'hello' not found in res/values/strings.xml"},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := session.Result{Path: "res/values/strings.xml", Name: "hello", Outcome: tc.outcome}
			require.Equal(t, tc.want, r.String(), "Unexpected status line")
		})
	}
}

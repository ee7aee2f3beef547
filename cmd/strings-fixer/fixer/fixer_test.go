package fixer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/canonical/android-strings/cmd/strings-fixer/fixer"
	"github.com/canonical/android-strings/internal/resources"
	"github.com/canonical/android-strings/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestFix(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		files   map[string]string
		missing bool

		wantFixed int
		wantErr   bool
	}{
		"Fix every locale file": {
			files: map[string]string{
				"values":       testutils.StringsXML("hello", "&amp;quot;Hello&amp;quot;"),
				"values-fr":    testutils.StringsXML("hello", "Bonjour"),
				"layout":       testutils.StringsXML("hello", "Not a locale"),
				"values-night": "",
			},
			wantFixed: 2,
		},
		"Missing resource directory fixes nothing": {missing: true},
		"No locale file fixes nothing":             {files: map[string]string{"drawable": testutils.StringsXML()}},

		"Error on malformed file": {files: map[string]string{"values": "<resources"}, wantErr: true},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			resDir := filepath.Join(t.TempDir(), "res")
			if !tc.missing {
				require.NoError(t, os.MkdirAll(resDir, 0750), "Setup: could not create resource directory")
			}
			for dir, content := range tc.files {
				if content == "" {
					require.NoError(t, os.MkdirAll(filepath.Join(resDir, dir), 0750), "Setup: could not create directory")
					continue
				}
				testutils.WriteStringsFile(t, resDir, dir, content)
			}

			var out bytes.Buffer
			a := fixer.New(fixer.WithOutput(&out))
			a.SetArgs("--res-dir", resDir)

			err := a.Run()
			if tc.wantErr {
				require.Error(t, err, "Run should return an error")
				require.False(t, a.UsageError(), "Runtime errors are not usage errors")
				return
			}
			require.NoError(t, err, "Run should return no error")
			require.Equal(t, tc.wantFixed, strings.Count(out.String(), "File fixed : "), "Unexpected number of fixed files: %s", out.String())

			if tc.wantFixed == 0 {
				return
			}
			d, err := resources.Load(filepath.Join(resDir, "values", "strings.xml"))
			require.NoError(t, err, "Fixed file should be parseable")
			got, _ := d.Lookup("hello")
			require.Equal(t, `"Hello"`, got, "Escaped quotes should be normalized")

			data, err := os.ReadFile(filepath.Join(resDir, "layout", "strings.xml"))
			require.NoError(t, err, "Setup: file should be readable")
			require.Equal(t, tc.files["layout"], string(data), "Files outside locale directories should not be touched")
		})
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	a := fixer.New(fixer.WithOutput(&out))
	a.SetArgs("version")

	err := a.Run()
	require.NoError(t, err, "Run should not return an error")
	require.Equal(t, "strings-fixer\tDev\n", out.String(), "Unexpected version output")
}

func TestUsageError(t *testing.T) {
	t.Parallel()

	a := fixer.New(fixer.WithOutput(&bytes.Buffer{}))
	a.SetArgs("doesnotexist")

	err := a.Run()
	require.Error(t, err, "Run should return an error")
	require.True(t, a.UsageError(), "Usage error is reported as such")
}

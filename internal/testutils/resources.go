// Package testutils implements helpers to build and inspect resource trees in tests.
package testutils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// StringsXML returns the content of a strings.xml file holding entries, given as name/value pairs.
func StringsXML(entries ...string) string {
	s := `<?xml version="1.0" encoding="utf-8"?>` + "\n<resources>\n"
	for i := 0; i+1 < len(entries); i += 2 {
		s += `    <string name="` + entries[i] + `">` + entries[i+1] + "</string>\n"
	}
	return s + "</resources>\n"
}

// WriteStringsFile writes content as the strings.xml file of the locale directory dir under resDir.
// It returns the path of the written file.
func WriteStringsFile(t *testing.T, resDir, dir, content string) string {
	t.Helper()

	d := filepath.Join(resDir, dir)
	err := os.MkdirAll(d, 0750)
	require.NoError(t, err, "Setup: could not create locale directory")

	p := filepath.Join(d, "strings.xml")
	err = os.WriteFile(p, []byte(content), 0600)
	require.NoError(t, err, "Setup: could not write strings.xml")

	return p
}

// CopyResTree copies the resource tree src into a temporary directory, and returns the copy's path.
func CopyResTree(t *testing.T, src string) string {
	t.Helper()

	dst := t.TempDir()
	err := filepath.WalkDir(src, func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if de.IsDir() {
			return os.MkdirAll(target, 0750)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0600)
	})
	require.NoError(t, err, "Setup: could not copy resource tree %q", src)

	return dst
}

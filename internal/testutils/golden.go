package testutils

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	// UpdateGoldenFilesEnv is the environment variable used to indicate go test that
	// the golden files should be overwritten with the current test results.
	UpdateGoldenFilesEnv = `TESTS_UPDATE_GOLDEN`
)

var update = os.Getenv(UpdateGoldenFilesEnv) != ""

// LoadWithUpdateFromGolden loads the expected output of the current (sub)test from its golden file.
// The golden file is rewritten with got first when TESTS_UPDATE_GOLDEN is set.
func LoadWithUpdateFromGolden(t *testing.T, got string) string {
	t.Helper()

	path := GoldenPath(t)

	if update {
		t.Logf("updating golden file %s", path)
		err := os.MkdirAll(filepath.Dir(path), 0750)
		require.NoError(t, err, "Cannot create directory for updating golden files")
		err = os.WriteFile(path, []byte(got), 0600)
		require.NoError(t, err, "Cannot write golden file")
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "Cannot load golden file %s", path)

	if runtime.GOOS == "windows" {
		return strings.ReplaceAll(string(want), "\r\n", "\n")
	}
	return string(want)
}

// LoadWithUpdateFromGoldenYAML is LoadWithUpdateFromGolden for values serialized as YAML.
func LoadWithUpdateFromGoldenYAML[E any](t *testing.T, got E) E {
	t.Helper()

	data, err := yaml.Marshal(got)
	require.NoError(t, err, "Cannot serialize provided object")
	want := LoadWithUpdateFromGolden(t, string(data))

	var wantDeserialized E
	err = yaml.Unmarshal([]byte(want), &wantDeserialized)
	require.NoError(t, err, "Cannot deserialize golden file")

	return wantDeserialized
}

// TestFamilyPath returns the testdata directory shared by the subtests of the current test.
func TestFamilyPath(t *testing.T) string {
	t.Helper()

	familyName, _, _ := strings.Cut(t.Name(), "/")
	return filepath.Join("testdata", familyName)
}

// GoldenPath returns the golden file path of the current (sub)test.
func GoldenPath(t *testing.T) string {
	t.Helper()

	path := filepath.Join(TestFamilyPath(t), "golden")
	if _, sub, found := strings.Cut(t.Name(), "/"); found {
		path = filepath.Join(path, normalizeName(sub))
	}
	return path
}

// normalizeName returns a file name from a subtest name, without characters Windows rejects.
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, `\`, "_")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ToLower(name)
}

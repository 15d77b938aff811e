// Package testutil holds helpers shared by sprint tests
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/solosprint/sprint/internal/osutil"
)

// GoldenTest produces rendered output and the name of the golden file it
// must match.
type GoldenTest interface {
	Output() ([]byte, string)
}

// Rendered is a GoldenTest for output that was already captured.
type Rendered struct {
	Name string
	Data []byte
}

func (r Rendered) Output() ([]byte, string) {
	return r.Data, r.Name
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output. A nil output asserts that no golden file exists.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	output, name := tc.Output()
	name = GoldenName(name)

	if output != nil {
		g.Assert(t, name, output)
		return
	}

	f := filepath.Join("testdata", name+".golden")
	if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
		t.Fatalf("expected no output, but golden file exists: %s", f)
	}
}

// GoldenName turns a subtest name into a golden file name.
func GoldenName(name string) string {
	r := strings.NewReplacer(" ", "_", "/", "_")

	return strings.ToLower(r.Replace(name))
}

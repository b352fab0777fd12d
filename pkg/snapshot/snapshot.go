package snapshot

import (
	"encoding/json"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// UpdateEnv is the environment variable that forces snapshot files to be rewritten
const UpdateEnv = "UPDATE_SNAPSHOTS"

var (
	mu        sync.Mutex
	callCount = make(map[string]int)
)

// TestingT is the subset of *testing.T used to validate snapshots
type TestingT interface {
	Helper()
	Name() string
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

var _ TestingT = (*testing.T)(nil)

// ValidateSnapshot compares obj, encoded as indented JSON, against testdata/{test name}-{call}.json
// A missing snapshot fails the test. When UPDATE_SNAPSHOTS is set the file is written instead.
func ValidateSnapshot(t TestingT, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := nextFilename(t.Name())
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
		return false
	}

	if os.Getenv(UpdateEnv) != "" {
		if err := create(filename, objJSON); err != nil {
			t.Fatalf("could not write snapshot %s: %v", filename, err)
			return false
		}

		return true
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		t.Errorf("snapshot %s does not exist, rerun with %s=1 to create it", filename, UpdateEnv)
		return false
	} else if err != nil {
		t.Fatalf("could not read snapshot %s: %v", filename, err)
		return false
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextFilename(testName string) string {
	mu.Lock()
	defer mu.Unlock()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)
	call := callCount[name]
	callCount[name] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func create(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644) // nolint:gosec
}

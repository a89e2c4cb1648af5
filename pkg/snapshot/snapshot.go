package snapshot

import (
	"encoding/json"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lolpoker-server/internal/util"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// Dir is where snapshots are kept, relative to the package under test
var Dir = "testdata"

var (
	lock  sync.Mutex
	calls = make(map[string]int)
)

// Validate compares obj, encoded as indented JSON, with the next snapshot for the test
// A missing snapshot is written instead. Set UPDATE_SNAPSHOTS=1 to rewrite every snapshot
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	filename := nextFilename(t.Name())

	actual, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || util.Getenv("UPDATE_SNAPSHOTS", "") == "1" {
		write(t, filename, actual)
		return
	}

	require.NoError(t, err)
	if !assert.Equal(t, strings.TrimSpace(string(expects)), strings.TrimSpace(string(actual)), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

// nextFilename returns a file per call so a test can take more than one snapshot
func nextFilename(testName string) string {
	lock.Lock()
	defer lock.Unlock()

	call := calls[testName]
	calls[testName] = call + 1

	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)
	return filepath.Join(Dir, fmt.Sprintf("%s-%d.json", name, call))
}

func write(t *testing.T, filename string, data []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0755))
	require.NoError(t, os.WriteFile(filename, append(data, '\n'), 0644))
}

package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"indigo/internal/util"
)

var (
	mu        sync.Mutex
	funcCount = make(map[string]int)
)

// ValidateSnapshot compares obj, encoded as indented JSON, against testdata/<func>-<call>.json
// A missing snapshot file is written and the check passes. Set INDIGO_UPDATE_SNAPSHOTS=1 to rewrite them all
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	filename := snapshotFile(2 + depth)
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || util.Getenv("INDIGO_UPDATE_SNAPSHOTS", "") == "1" {
		write(t, filename, objJSON)
		return
	} else if err != nil {
		t.Fatalf("could not read snapshot: %v", err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

// snapshotFile names the file after the calling function and how many times it has asked for a snapshot
func snapshotFile(skip int) string {
	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	mu.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	mu.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(t *testing.T, filename string, data []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot dir: %v", err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		t.Fatalf("could not write snapshot: %v", err)
	}
}

package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fixtureRoots are tried in order so helpers work from any package depth.
var fixtureRoots = []string{".", "..", filepath.Join("..", ".."), filepath.Join("..", "..", "..")}

// LoadCommand returns a command string fixture with surrounding whitespace
// trimmed. Inner whitespace is kept.
func LoadCommand(t *testing.T, rel string) string {
	t.Helper()
	return strings.TrimSpace(string(fixture(t, rel)))
}

// LoadPulses loads the expected pulse list stored next to a command fixture
// as a JSON array.
func LoadPulses(t *testing.T, rel string) []int {
	t.Helper()
	var pulses []int
	if err := json.Unmarshal(fixture(t, rel), &pulses); err != nil {
		t.Fatalf("pulse fixture %s: %v", rel, err)
	}
	return pulses
}

func fixture(t *testing.T, rel string) []byte {
	t.Helper()
	for _, root := range fixtureRoots {
		data, err := os.ReadFile(filepath.Join(root, "testdata", rel))
		if err == nil {
			return data
		}
	}
	t.Fatalf("fixture %s not found under any testdata directory", rel)
	return nil
}

package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path to a new database file in a temporary
// directory that is removed after the test.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), fmt.Sprintf("banktrack-%s.db", uuid.NewString()))
}

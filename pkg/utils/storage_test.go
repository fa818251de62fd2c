//go:build !android

package utils

import "testing"

func TestEnsureStorageDir_Desktop(t *testing.T) {
	if err := EnsureStorageDir("battlegrid"); err != nil {
		t.Fatalf("EnsureStorageDir() error = %v", err)
	}
	if got := StoragePath("battlegrid"); got != "" {
		t.Errorf("StoragePath() = %q, want empty", got)
	}
}

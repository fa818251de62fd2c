package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battle.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
		output  string
	}{
		{
			name:    "valid",
			content: "roster:\n  - {id: 1, name: Cloud}\ninitialCells: [0]\n",
			want:    true,
			output:  "所有初始站位有效",
		},
		{
			name:    "out of range",
			content: "grid:\n  rows: 2\nroster:\n  - {id: 1, name: Cloud}\ninitialCells: [12]\n",
			want:    false,
			output:  "超出网格范围",
		},
		{
			name:    "missing placement",
			content: "roster:\n  - {id: 1, name: Cloud}\n  - {id: 2, name: Tifa}\ninitialCells: [0]\n",
			want:    true,
			output:  "1 名角色没有初始站位",
		},
		{
			name:    "broken yaml",
			content: "roster: [",
			want:    false,
			output:  "配置无效",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := validate(&out, writeConfig(t, tt.content))
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), tt.output)
		})
	}
}

func TestValidate_MissingFile(t *testing.T) {
	var out bytes.Buffer
	assert.False(t, validate(&out, filepath.Join(t.TempDir(), "nope.yaml")))
}

package download

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "game.zip", expected: "game.zip"},
		{name: "spaces kept", input: "my game v1.zip", expected: "my game v1.zip"},
		{name: "parent traversal", input: "../../../etc/passwd", expected: "passwd"},
		{name: "windows traversal", input: `..\..\evil.exe`, expected: "evil.exe"},
		{name: "absolute", input: "/etc/shadow", expected: "shadow"},
		{name: "dot", input: ".", expected: DefaultFilename},
		{name: "dot dot", input: "..", expected: DefaultFilename},
		{name: "empty", input: "", expected: DefaultFilename},
		{name: "trailing slash", input: "dir/", expected: "dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestFilenameFromURL(t *testing.T) {
	assert.Equal(t, "f.zip", FilenameFromURL("https://cdn.example.com/files/f.zip?token=1"))
	assert.Equal(t, "a b.rar", FilenameFromURL("https://cdn.example.com/a%20b.rar"))
	assert.Equal(t, DefaultFilename, FilenameFromURL("https://cdn.example.com"))
	assert.Equal(t, DefaultFilename, FilenameFromURL("https://cdn.example.com/"))
}

func TestSavePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/dl", "f.zip"), SavePath("/dl", "f.zip"))
	assert.Equal(t, filepath.Join("/dl", "x"), SavePath("/dl", "../x"))
}

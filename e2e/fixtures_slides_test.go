//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates an isolated directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateSlideDir writes one file per title into a directory of the workspace
func (tf *TUITestFramework) CreateSlideDir(name string, titles ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	dir := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	for i, title := range titles {
		file := filepath.Join(dir, fmt.Sprintf("%02d.md", i+1))
		body := fmt.Sprintf("# %s\nbody of %s\n", title, strings.ToLower(title))
		if err := os.WriteFile(file, []byte(body), 0644); err != nil {
			return "", err
		}
	}
	return dir, nil
}

// CreateDeck writes a single file with slides separated by --- lines
func (tf *TUITestFramework) CreateDeck(name string, titles ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	parts := make([]string, len(titles))
	for i, title := range titles {
		parts[i] = title + "\n"
	}
	path := filepath.Join(tf.workspace, name)
	return path, os.WriteFile(path, []byte(strings.Join(parts, "---\n")), 0644)
}

// WriteConfig writes .carousel.toml into the workspace
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, ".carousel.toml")
	return path, os.WriteFile(path, []byte(content), 0644)
}

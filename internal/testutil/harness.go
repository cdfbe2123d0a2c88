// Package testutil provides shared helpers for integration-style tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/fpgaflow/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an end-to-end build run.
type HarnessResult struct {
	LogOutput string
	Err       error
	Makefile  string
	WorkRoot  string
}

// RunBuild provides a standardized harness for end-to-end tests: it writes
// the given project file into a temporary work root, runs the app against
// it and collects the generated build rule file.
func RunBuild(t *testing.T, fileName, content, flowName string) *HarnessResult {
	t.Helper()

	workRoot := t.TempDir()
	projectPath := filepath.Join(workRoot, fileName)
	require.NoError(t, os.WriteFile(projectPath, []byte(content), 0o644))

	logBuf := &SafeBuffer{}
	cfg, err := app.NewConfig(app.Config{
		ProjectPath: projectPath,
		Flow:        flowName,
		WorkRoot:    workRoot,
		LogFormat:   "text",
		LogLevel:    "debug",
	})
	require.NoError(t, err)

	result := &HarnessResult{WorkRoot: workRoot}
	func() {
		// app.NewApp panics on unloadable projects; fold that into Err so
		// tests can assert on startup failures too.
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("startup panicked: %v", r)
			}
		}()
		a := app.NewApp(logBuf, cfg)
		result.Err = a.Run(context.Background())
	}()

	result.LogOutput = logBuf.String()
	if raw, err := os.ReadFile(filepath.Join(workRoot, cfg.Output)); err == nil {
		result.Makefile = string(raw)
	}
	return result
}

package workspace

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAcquireRelease(t *testing.T) {
	manager := NewManager(t.TempDir())

	ws, err := manager.Acquire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(ws.Dir()); err != nil {
		t.Fatalf("workspace dir should exist: %v", err)
	}

	if err := ws.Release(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(ws.Dir()); !os.IsNotExist(err) {
		t.Error("workspace dir should be removed after Release")
	}

	// Release is idempotent.
	if err := ws.Release(); err != nil {
		t.Errorf("second Release should be a no-op, got %v", err)
	}
}

func TestAcquire_IsolatedDirs(t *testing.T) {
	manager := NewManager(t.TempDir())

	a, err := manager.Acquire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Release()

	b, err := manager.Acquire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer b.Release()

	if a.Dir() == b.Dir() {
		t.Error("workspaces should get distinct directories")
	}
}

func TestWriteJSON(t *testing.T) {
	manager := NewManager(t.TempDir())
	ws, err := manager.Acquire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ws.Release()

	params := map[string]any{"n_estimators": 100, "max_depth": 10}
	path, err := ws.WriteJSON("rf_config.json", params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Dir(path) != ws.Dir() {
		t.Errorf("file written outside workspace: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["n_estimators"] != float64(100) || got["max_depth"] != float64(10) {
		t.Errorf("document = %v", got)
	}
}

func TestWriteJSON_Unserializable(t *testing.T) {
	manager := NewManager(t.TempDir())
	ws, err := manager.Acquire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ws.Release()

	_, err = ws.WriteJSON("bad.json", make(chan int))
	if err == nil {
		t.Fatal("expected error for unserializable value")
	}

	var wsErr *WorkspaceError
	if !errors.As(err, &wsErr) {
		t.Fatalf("expected *WorkspaceError, got %T", err)
	}
	if wsErr.Op != "write" {
		t.Errorf("Op = %q, want write", wsErr.Op)
	}
}

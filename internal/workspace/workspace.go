// Package workspace управляет эфемерным рабочим каталогом run.
//
// Каталог существует от Acquire до Release и содержит только
// транзитную материализацию для вызовов шагов (например, JSON-документ
// гиперпараметров для шага обучения). Постоянным хранилищем артефактов
// workspace не является; на каждом пути выхода run каталог удаляется.
package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WorkspaceError — ошибка аллокации или очистки workspace.
type WorkspaceError struct {
	Op   string // операция: "acquire", "write", "release"
	Path string // затронутый путь
	Err  error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *WorkspaceError) Error() string {
	if e.Path != "" {
		return "workspace " + e.Op + " " + e.Path + ": " + e.Err.Error()
	}
	return "workspace " + e.Op + ": " + e.Err.Error()
}

// Unwrap возвращает базовую ошибку.
func (e *WorkspaceError) Unwrap() error {
	return e.Err
}

// Manager выделяет изолированные рабочие каталоги.
type Manager struct {
	baseDir string
}

// NewManager создаёт Manager. Пустой baseDir означает системный temp.
func NewManager(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Acquire выделяет новый эфемерный каталог.
// Вызывающий обязан гарантировать Release на каждом пути выхода.
func (m *Manager) Acquire() (*Workspace, error) {
	dir, err := os.MkdirTemp(m.baseDir, "conveyor-run-")
	if err != nil {
		return nil, &WorkspaceError{Op: "acquire", Err: err}
	}
	return &Workspace{dir: dir}, nil
}

// Workspace — выделенный рабочий каталог одного run.
//
// Каталог принадлежит оркестратору эксклюзивно: шаги выполняются
// по одному, конкурентного доступа нет.
type Workspace struct {
	dir      string
	released bool
}

// Dir возвращает путь каталога.
func (w *Workspace) Dir() string {
	return w.dir
}

// WriteJSON сериализует значение в JSON-файл внутри workspace
// и возвращает абсолютный путь файла.
func (w *Workspace) WriteJSON(name string, value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", &WorkspaceError{Op: "write", Path: name, Err: err}
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &WorkspaceError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}

// Release удаляет каталог. Повторный вызов — no-op.
func (w *Workspace) Release() error {
	if w.released {
		return nil
	}
	w.released = true

	if err := os.RemoveAll(w.dir); err != nil {
		return &WorkspaceError{Op: "release", Path: w.dir, Err: err}
	}
	return nil
}

// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package mod

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeModule(t *testing.T, content string) string {

	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, goModFile), []byte(content), 0o600); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	return root
}

func TestPkgPath(t *testing.T) {

	t.Parallel()

	root := writeModule(t, "module example.com/maps\n\ngo 1.25\n")
	if err := os.MkdirAll(filepath.Join(root, "internal"), 0o700); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		dir  string
		want string
	}{
		{name: "root", dir: root, want: "example.com/maps"},
		{name: "existing", dir: filepath.Join(root, "internal"), want: "example.com/maps/internal"},
		{name: "not created yet", dir: filepath.Join(root, "internal", "icons"), want: "example.com/maps/internal/icons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := PkgPath(tt.dir)
			if err != nil {
				t.Fatalf("PkgPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PkgPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModulePath_noModule(t *testing.T) {

	t.Parallel()

	root := writeModule(t, "go 1.25\n")
	if _, err := ModulePath(filepath.Join(root, goModFile)); err == nil {
		t.Error("ModulePath() error = nil, want missing module declaration")
	}
}

func TestGoModPath_missing(t *testing.T) {

	t.Parallel()

	// Temp dirs are outside any module unless TMPDIR is inside one.
	dir := t.TempDir()
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), goModFile)); err == nil {
		t.Skip("temp dir is inside a module")
	}
	if _, err := GoModPath(dir); err != nil && !errors.Is(err, ErrNoGoMod) {
		t.Errorf("GoModPath() error = %v, want %v", err, ErrNoGoMod)
	}
}

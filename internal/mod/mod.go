// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package mod resolves import paths from the nearest go.mod.
package mod

import (
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

const goModFile = "go.mod"

// ErrNoGoMod is returned when no go.mod exists in a directory or its parents.
var ErrNoGoMod = errors.New("go.mod not found")

// GoModPath returns the path of the go.mod governing dir.
func GoModPath(dir string) (goModPath string, err error) {

	if dir, err = filepath.Abs(dir); err != nil {
		return "", errors.Wrap(err, "cannot resolve directory")
	}
	for currentDir := dir; ; {
		goModPath = filepath.Join(currentDir, goModFile)
		if _, err = os.Stat(goModPath); err == nil {
			return goModPath, nil
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", errors.Wrapf(ErrNoGoMod, "starting from %s", dir)
		}
		currentDir = parentDir
	}
}

// ModulePath reads the module path declared in goModPath.
func ModulePath(goModPath string) (modulePath string, err error) {

	var modBytes []byte
	if modBytes, err = os.ReadFile(goModPath); err != nil {
		return "", errors.Wrap(err, "failed to read go.mod")
	}

	var modFile *modfile.File
	if modFile, err = modfile.ParseLax(goModPath, modBytes, nil); err != nil {
		return "", errors.Wrap(err, "failed to parse go.mod")
	}
	if modFile.Module == nil {
		return "", errors.Errorf("module declaration not found in %s", goModPath)
	}
	return modFile.Module.Mod.Path, nil
}

// PkgPath returns the import path of the package in dir. dir need not exist yet.
func PkgPath(dir string) (pkgPath string, err error) {

	var goModPath string
	if goModPath, err = GoModPath(existingParent(dir)); err != nil {
		return "", err
	}

	var modulePath string
	if modulePath, err = ModulePath(goModPath); err != nil {
		return "", err
	}

	var absDir, rel string
	if absDir, err = filepath.Abs(dir); err != nil {
		return "", errors.Wrap(err, "cannot resolve directory")
	}
	if rel, err = filepath.Rel(filepath.Dir(goModPath), absDir); err != nil {
		return "", errors.Wrap(err, "directory is outside of the module")
	}

	pkgPath = path.Join(modulePath, filepath.ToSlash(rel))
	if err = module.CheckImportPath(pkgPath); err != nil {
		return "", errors.Wrapf(err, "invalid import path %q", pkgPath)
	}
	return pkgPath, nil
}

func existingParent(dir string) string {

	for {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

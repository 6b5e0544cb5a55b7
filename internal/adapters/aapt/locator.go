// Package aapt extracts package metadata with the Android asset packaging tool.
package aapt

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// Tools lists the supported dump tools in order of preference.
var Tools = []string{"aapt2", "aapt"}

// SDKRootEnv lists the environment variables that may point at an Android SDK, in order of precedence.
var SDKRootEnv = []string{"ANDROID_HOME", "ANDROID_SDK_ROOT"}

// Locator finds a dump tool on PATH or inside the newest SDK build-tools directory.
type Locator struct {
	lookPath func(string) (string, error)
	getenv   func(string) string
}

// NewLocator creates a Locator backed by the process environment.
func NewLocator() *Locator {
	return &Locator{
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
	}
}

// Locate returns the path of the dump tool to use.
func (l *Locator) Locate(explicit string) (string, error) {
	if explicit != "" {
		if err := checkExecutable(explicit); err != nil {
			return "", zerr.With(zerr.Wrap(err, "configured tool is not usable"), "tool", explicit)
		}
		return explicit, nil
	}

	for _, tool := range Tools {
		if path, err := l.lookPath(tool); err == nil {
			return path, nil
		}
		if path, ok := l.fromSDK(tool); ok {
			return path, nil
		}
	}
	return "", domain.ErrToolNotFound
}

func (l *Locator) sdkRoot() string {
	for _, key := range SDKRootEnv {
		if v := l.getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func (l *Locator) fromSDK(tool string) (string, bool) {
	root := l.sdkRoot()
	if root == "" {
		return "", false
	}

	entries, err := os.ReadDir(filepath.Join(root, "build-tools"))
	if err != nil {
		return "", false
	}

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			versions = append(versions, e.Name())
		}
	}
	slices.SortFunc(versions, newestFirst)

	for _, v := range versions {
		path := filepath.Join(root, "build-tools", v, tool)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// newestFirst orders build-tools directory names by descending version.
// Names that are not semantic versions sort after all versions, in reverse lexical order.
func newestFirst(a, b string) int {
	va, vb := "v"+a, "v"+b
	okA, okB := semver.IsValid(va), semver.IsValid(vb)
	switch {
	case okA && okB:
		if c := semver.Compare(vb, va); c != 0 {
			return c
		}
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(b, a)
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() || info.Mode()&0o111 == 0 {
		return errors.New("not an executable file")
	}
	return nil
}

// Package project manages the on-disk workspace used by the translate
// command: scaffolding, cleaning and building a distributable archive.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/xishang0128/ini-translate-go/common/file"
)

const (
	InputDir       = "input"
	ExportDir      = "export"
	BackupDir      = "backup"
	ExcelDir       = "excel"
	DictionaryFile = "translations.json"
	ExampleIniFile = "example.ini"
)

// Reporter receives workspace events. Paths are relative to the workspace
// root.
type Reporter interface {
	Created(path string)
	Exists(path string)
	Copied(path string, files int)
	Removed(path string)
	Missing(path string)
	RemoveFailed(path string, err error)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Created(string) {}
func (NopReporter) Exists(string) {}
func (NopReporter) Copied(string, int) {}
func (NopReporter) Removed(string) {}
func (NopReporter) Missing(string) {}
func (NopReporter) RemoveFailed(string, error) {}

// ExampleDictionary returns the entries written by Init.
func ExampleDictionary() *orderedmap.OrderedMap[string, string] {
	m := orderedmap.New[string, string]()
	m.Set("Engine Type", "引擎类型")
	m.Set("Launch Control Enabled", "启动控制已启用")
	m.Set("Cranking RPM", "启动转速")
	m.Set("Idle Speed", "怠速")
	m.Set("Injection Timing", "喷油正时")
	return m
}

// ExampleIni is the sample input written by Init.
const ExampleIni = `[Engine]
Engine Type = DEFAULT_FRANKENSO
Launch Control Enabled = true
Cranking RPM = 300
Idle Speed = 850

[Sensors]
Coolant Temperature = 90
MAP Sensor = MPX4250

[Controls]
Closed Loop = true
Injection Timing = 360`

// Init creates the input, export and backup directories under root plus an
// example dictionary and input file. Existing files are left alone.
func Init(root string, rep Reporter) error {
	if rep == nil {
		rep = NopReporter{}
	}
	for _, dir := range []string{InputDir, ExportDir, BackupDir} {
		if err := ensureDir(root, dir, rep); err != nil {
			return err
		}
	}

	dict, err := json.MarshalIndent(ExampleDictionary(), "", "  ")
	if err != nil {
		return err
	}
	if err := createFile(root, DictionaryFile, dict, rep); err != nil {
		return err
	}
	return createFile(root, filepath.Join(InputDir, ExampleIniFile), []byte(ExampleIni), rep)
}

// Clean removes dirs under root. A directory that cannot be removed is
// reported and the rest are still processed; all failures are returned.
func Clean(root string, dirs []string, rep Reporter) error {
	if rep == nil {
		rep = NopReporter{}
	}
	if len(dirs) == 0 {
		dirs = []string{ExportDir, BackupDir}
	}

	var errs []error
	for _, dir := range dirs {
		path := filepath.Join(root, dir)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			rep.Missing(dir)
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			rep.RemoveFailed(dir, err)
			errs = append(errs, fmt.Errorf("remove %s: %w", dir, err))
			continue
		}
		rep.Removed(dir)
	}
	return errors.Join(errs...)
}

func ensureDir(root, dir string, rep Reporter) error {
	path := filepath.Join(root, dir)
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		rep.Exists(dir)
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}
	rep.Created(dir)
	return nil
}

func createFile(root, name string, data []byte, rep Reporter) error {
	path := filepath.Join(root, name)
	if _, err := os.Stat(path); err == nil {
		rep.Exists(name)
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	rep.Created(name)
	return nil
}

// copyDirFiles copies the regular files directly inside src into dst and
// returns how many were copied. A missing src copies nothing.
func copyDirFiles(src, dst string) (int, error) {
	entries, err := os.ReadDir(src)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	copied := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := file.CopyFile(filepath.Join(src, e.Name()), filepath.Join(dst, e.Name())); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

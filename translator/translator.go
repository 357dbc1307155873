package translator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/ini.v1"
)

var (
	ErrInputDirNotFound   = errors.New("input directory not found")
	ErrDictionaryNotFound = errors.New("dictionary file not found")
	ErrNoIniFiles         = errors.New("no .ini files in input directory")
)

// Options configures a batch translation. Zero values take the defaults of
// DefaultOptions.
type Options struct {
	InputDir       string
	ExportDir      string
	BackupDir      string
	DictionaryPath string
	Workers        int
}

// DefaultOptions returns the directory layout created by project.Init.
func DefaultOptions() Options {
	return Options{
		InputDir:       "input",
		ExportDir:      "export",
		BackupDir:      "backup",
		DictionaryPath: "translations.json",
		Workers:        runtime.NumCPU(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.InputDir == "" {
		o.InputDir = def.InputDir
	}
	if o.ExportDir == "" {
		o.ExportDir = def.ExportDir
	}
	if o.BackupDir == "" {
		o.BackupDir = def.BackupDir
	}
	if o.DictionaryPath == "" {
		o.DictionaryPath = def.DictionaryPath
	}
	if o.Workers <= 0 {
		o.Workers = def.Workers
	}
	return o
}

// FileResult is the outcome for one input file.
type FileResult struct {
	File         string
	Replacements int
	Changes      []Change
	// Warning is set when the translated file no longer loads as INI.
	Warning error
	Err     error
}

// Summary aggregates a batch run.
type Summary struct {
	Files        []FileResult
	Succeeded    int
	Failed       int
	Replacements int
	Elapsed      time.Duration
}

// ProgressInfo is sent after each file finishes.
type ProgressInfo struct {
	File      string
	Completed int
	Total     int
	Result    FileResult
}

// ProgressCallback is a function type for receiving progress updates
type ProgressCallback func(progress ProgressInfo)

// Reporter is told about the preparation steps of a batch.
type Reporter interface {
	DictionaryLoaded(entries int)
	BackupCreated(dir string, cleared bool, files int)
	FilesFound(files []string)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) DictionaryLoaded(int) {}
func (NopReporter) BackupCreated(string, bool, int) {}
func (NopReporter) FilesFound([]string) {}

// Run backs up opts.InputDir, then translates every *.ini file in it into
// opts.ExportDir using up to opts.Workers goroutines. A failing file is
// recorded in the summary and does not stop the others. Results are in file
// name order.
func Run(ctx context.Context, opts Options, rep Reporter, progress ProgressCallback) (*Summary, error) {
	start := time.Now()
	opts = opts.withDefaults()
	if rep == nil {
		rep = NopReporter{}
	}

	if _, err := os.Stat(opts.InputDir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputDirNotFound, opts.InputDir)
	}
	if _, err := os.Stat(opts.DictionaryPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, opts.DictionaryPath)
	}

	dict, err := LoadDictionary(opts.DictionaryPath)
	if err != nil {
		return nil, err
	}
	rep.DictionaryLoaded(dict.Len())

	backup := NewBackupManager(opts.BackupDir)
	cleared, copied, err := backup.Snapshot(opts.InputDir)
	if err != nil {
		return nil, err
	}
	rep.BackupCreated(backup.Dir(), cleared, copied)

	if err := os.MkdirAll(opts.ExportDir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	files, err := listIniFiles(opts.InputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoIniFiles, opts.InputDir)
	}
	rep.FilesFound(files)

	results := make([]FileResult, len(files))
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
	)
	sem := make(chan struct{}, opts.Workers)
	for i, name := range files {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			var res FileResult
			if err := ctx.Err(); err != nil {
				res = FileResult{File: name, Err: err}
			} else {
				res = TranslateFile(dict, filepath.Join(opts.InputDir, name), filepath.Join(opts.ExportDir, name))
				res.File = name
			}
			results[i] = res

			mu.Lock()
			completed++
			info := ProgressInfo{File: name, Completed: completed, Total: len(files), Result: res}
			if progress != nil {
				progress(info)
			}
			mu.Unlock()
		}(i, name)
	}
	wg.Wait()

	summary := &Summary{Files: results}
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Replacements += r.Replacements
	}
	summary.Elapsed = time.Since(start)
	return summary, nil
}

// TranslateFile applies dict to src and writes the result to dst.
func TranslateFile(dict *Dictionary, src, dst string) FileResult {
	res := FileResult{File: filepath.Base(src)}

	data, err := os.ReadFile(src)
	if err != nil {
		res.Err = err
		return res
	}

	out, changes := dict.Apply(string(data))
	for _, c := range changes {
		res.Replacements += c.Count
	}
	res.Changes = changes

	if err := os.WriteFile(dst, []byte(out), 0644); err != nil {
		res.Err = err
		return res
	}
	res.Warning = Validate([]byte(out))
	return res
}

// Validate checks that content still loads as an INI document.
func Validate(content []byte) error {
	_, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
		AllowBooleanKeys:            true,
		AllowShadows:                true,
	}, content)
	return err
}

func listIniFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".ini") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}

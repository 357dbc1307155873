package translator

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func dictionaryOf(pairs ...string) *Dictionary {
	m := orderedmap.New[string, string]()
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return NewDictionary(m)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDictionaryApply(t *testing.T) {
	d := dictionaryOf("Idle Speed", "怠速", "Speed", "速度", "", "never")

	out, changes := d.Apply("Idle Speed = 1\nSpeed = 2\nSpeed = 3")
	assert.Equal(t, "怠速 = 1\n速度 = 2\n速度 = 3", out)
	assert.Equal(t, []Change{
		{Original: "Idle Speed", Translated: "怠速", Count: 1},
		{Original: "Speed", Translated: "速度", Count: 2},
	}, changes)
}

func TestDictionaryApplyNoMatch(t *testing.T) {
	out, changes := dictionaryOf("foo", "bar").Apply("nothing here")
	assert.Equal(t, "nothing here", out)
	assert.Empty(t, changes)
}

func TestLoadDictionaryKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.json")
	writeFile(t, path, `{"Speed": "速度", "Idle Speed": "怠速"}`)

	d, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	// "Speed" runs first, so "Idle Speed" no longer matches.
	out, changes := d.Apply("Idle Speed")
	assert.Equal(t, "Idle 速度", out)
	require.Len(t, changes, 1)
}

func TestLoadDictionaryInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.json")
	writeFile(t, path, `["not", "an", "object"]`)

	_, err := LoadDictionary(path)
	assert.Error(t, err)
}

func TestBackupSnapshot(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input")
	backupDir := filepath.Join(dir, "backup")
	writeFile(t, filepath.Join(src, "a.ini"), "a")
	writeFile(t, filepath.Join(src, "b.txt"), "b")
	writeFile(t, filepath.Join(src, "nested", "c.ini"), "c")
	writeFile(t, filepath.Join(backupDir, "stale.ini"), "old")

	m := NewBackupManager(backupDir)
	cleared, copied, err := m.Snapshot(src)
	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Equal(t, 2, copied)

	assert.NoFileExists(t, filepath.Join(backupDir, "stale.ini"))
	assert.NoDirExists(t, filepath.Join(backupDir, "nested"))
	data, err := os.ReadFile(filepath.Join(backupDir, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

type recordingReporter struct {
	entries int
	copied  int
	files   []string
}

func (r *recordingReporter) DictionaryLoaded(n int) { r.entries = n }
func (r *recordingReporter) BackupCreated(_ string, _ bool, n int) { r.copied = n }
func (r *recordingReporter) FilesFound(files []string) { r.files = files }

func newWorkspace(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	opts := Options{
		InputDir:       filepath.Join(dir, "input"),
		ExportDir:      filepath.Join(dir, "export"),
		BackupDir:      filepath.Join(dir, "backup"),
		DictionaryPath: filepath.Join(dir, "translations.json"),
		Workers:        2,
	}
	writeFile(t, opts.DictionaryPath, `{"Engine Type": "引擎类型", "Idle Speed": "怠速"}`)
	return opts
}

func TestRun(t *testing.T) {
	opts := newWorkspace(t)
	writeFile(t, filepath.Join(opts.InputDir, "b.ini"), "[Engine]\nIdle Speed = 850\n")
	writeFile(t, filepath.Join(opts.InputDir, "a.ini"), "[Engine]\nEngine Type = X\nIdle Speed = 800\n")
	writeFile(t, filepath.Join(opts.InputDir, "notes.txt"), "Idle Speed")

	rep := &recordingReporter{}
	var mu sync.Mutex
	var seen []ProgressInfo
	summary, err := Run(context.Background(), opts, rep, func(p ProgressInfo) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, p)
	})
	require.NoError(t, err)

	assert.Equal(t, 2, rep.entries)
	assert.Equal(t, 3, rep.copied)
	assert.Equal(t, []string{"a.ini", "b.ini"}, rep.files)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 3, summary.Replacements)
	require.Len(t, summary.Files, 2)
	assert.Equal(t, "a.ini", summary.Files[0].File)
	assert.Equal(t, 2, summary.Files[0].Replacements)
	assert.NoError(t, summary.Files[0].Warning)

	require.Len(t, seen, 2)
	assert.Equal(t, 2, seen[1].Completed)
	assert.Equal(t, 2, seen[1].Total)

	out, err := os.ReadFile(filepath.Join(opts.ExportDir, "a.ini"))
	require.NoError(t, err)
	assert.Equal(t, "[Engine]\n引擎类型 = X\n怠速 = 800\n", string(out))
	assert.NoFileExists(t, filepath.Join(opts.ExportDir, "notes.txt"))
	assert.FileExists(t, filepath.Join(opts.BackupDir, "notes.txt"))

	// inputs are untouched
	in, err := os.ReadFile(filepath.Join(opts.InputDir, "b.ini"))
	require.NoError(t, err)
	assert.Equal(t, "[Engine]\nIdle Speed = 850\n", string(in))
}

func TestRunMissingInputDir(t *testing.T) {
	opts := newWorkspace(t)
	_, err := Run(context.Background(), opts, nil, nil)
	assert.ErrorIs(t, err, ErrInputDirNotFound)
}

func TestRunMissingDictionary(t *testing.T) {
	opts := newWorkspace(t)
	require.NoError(t, os.MkdirAll(opts.InputDir, 0755))
	require.NoError(t, os.Remove(opts.DictionaryPath))

	_, err := Run(context.Background(), opts, nil, nil)
	assert.ErrorIs(t, err, ErrDictionaryNotFound)
}

func TestRunNoIniFiles(t *testing.T) {
	opts := newWorkspace(t)
	writeFile(t, filepath.Join(opts.InputDir, "readme.txt"), "x")

	_, err := Run(context.Background(), opts, nil, nil)
	assert.ErrorIs(t, err, ErrNoIniFiles)
	assert.DirExists(t, opts.ExportDir)
}

func TestRunCancelled(t *testing.T) {
	opts := newWorkspace(t)
	writeFile(t, filepath.Join(opts.InputDir, "a.ini"), "[Engine]\nIdle Speed = 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	summary, err := Run(ctx, opts, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.ErrorIs(t, summary.Files[0].Err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(opts.ExportDir, "a.ini"))
}

func TestTranslateFileValidationWarning(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.ini")
	dst := filepath.Join(dir, "out.ini")
	writeFile(t, src, "[Engine]\nName = x\n")

	// Turning the header into an unterminated bracket breaks the INI syntax.
	res := TranslateFile(dictionaryOf("[Engine]", "[引擎"), src, dst)
	require.NoError(t, res.Err)
	assert.Error(t, res.Warning)
	assert.Equal(t, 1, res.Replacements)
	assert.FileExists(t, dst)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]byte("[a]\nk = v ; not a comment\nflag\n")))
	assert.Error(t, Validate([]byte("[broken\nk = v\n")))
}

func TestRunSelfTest(t *testing.T) {
	for _, r := range RunSelfTest(SelfTestCases) {
		assert.True(t, r.Passed, "%s: got %q", r.Case.Name, r.Actual)
	}

	failing := RunSelfTest([]SelfTestCase{{Name: "wrong", Entries: [][2]string{{"a", "b"}}, Input: "a", Expected: "a"}})
	require.Len(t, failing, 1)
	assert.False(t, failing[0].Passed)
	assert.Equal(t, "b", failing[0].Actual)
}

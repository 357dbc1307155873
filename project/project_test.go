package project

import (
	"archive/tar"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/xishang0128/ini-translate-go/compression"
)

type events struct {
	created, exists, removed, missing []string
	copied                            map[string]int
	failed                            []string
}

func newEvents() *events { return &events{copied: map[string]int{}} }

func (e *events) Created(p string) { e.created = append(e.created, filepath.ToSlash(p)) }
func (e *events) Exists(p string) { e.exists = append(e.exists, filepath.ToSlash(p)) }
func (e *events) Copied(p string, n int) { e.copied[p] = n }
func (e *events) Removed(p string) { e.removed = append(e.removed, p) }
func (e *events) Missing(p string) { e.missing = append(e.missing, p) }
func (e *events) RemoveFailed(p string, _ error) { e.failed = append(e.failed, p) }

func TestInit(t *testing.T) {
	root := t.TempDir()
	ev := newEvents()
	require.NoError(t, Init(root, ev))

	assert.Equal(t, []string{"input", "export", "backup", "translations.json", "input/example.ini"}, ev.created)
	assert.Empty(t, ev.exists)

	data, err := os.ReadFile(filepath.Join(root, DictionaryFile))
	require.NoError(t, err)
	dict := orderedmap.New[string, string]()
	require.NoError(t, json.Unmarshal(data, dict))
	assert.Equal(t, 5, dict.Len())
	assert.Equal(t, "Engine Type", dict.Oldest().Key)

	ini, err := os.ReadFile(filepath.Join(root, InputDir, ExampleIniFile))
	require.NoError(t, err)
	assert.Equal(t, ExampleIni, string(ini))
}

func TestInitKeepsExisting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, DictionaryFile), []byte(`{"a":"b"}`), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, InputDir), 0755))

	ev := newEvents()
	require.NoError(t, Init(root, ev))
	assert.Equal(t, []string{"input", "translations.json"}, ev.exists)

	data, err := os.ReadFile(filepath.Join(root, DictionaryFile))
	require.NoError(t, err)
	assert.Equal(t, `{"a":"b"}`, string(data))
}

func TestInitFileInPlaceOfDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ExportDir), nil, 0644))
	assert.Error(t, Init(root, nil))
}

func TestClean(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ExportDir, "sub"), 0755))

	ev := newEvents()
	require.NoError(t, Clean(root, nil, ev))
	assert.Equal(t, []string{"export"}, ev.removed)
	assert.Equal(t, []string{"backup"}, ev.missing)
	assert.NoDirExists(t, filepath.Join(root, ExportDir))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"zip": FormatZip, ".ZIP": FormatZip, "tar.xz": FormatTarXZ, "tar.zst": FormatTarZS} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("rar")
	assert.Error(t, err)
}

func newPackageRoot(t *testing.T) (string, PackageOptions) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, Init(root, nil))
	require.NoError(t, os.Mkdir(filepath.Join(root, ExcelDir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ExcelDir, "key.xlsx"), []byte("xlsx"), 0644))

	exe := filepath.Join(root, "fake-bin")
	require.NoError(t, os.WriteFile(exe, []byte("binary"), 0755))
	return root, PackageOptions{Root: root, Executable: exe, BinaryName: "ini-translate.exe"}
}

func zipNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func TestPackageZip(t *testing.T) {
	root, opts := newPackageRoot(t)

	ev := newEvents()
	res, err := Package(opts, ev)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "ini-translate-tool.zip"), res.Archive)
	assert.Equal(t, 5, res.Dictionary)
	assert.Positive(t, res.Size)
	assert.Equal(t, 1, ev.copied["input"])
	assert.Equal(t, 1, ev.copied["excel"])

	assert.Equal(t, []string{
		"README.txt",
		"backup/",
		"excel/",
		"excel/key.xlsx",
		"export/",
		"ini-translate.exe",
		"input/",
		"input/example.ini",
		"translate.bat",
		"translations.json",
	}, zipNames(t, res.Archive))

	bat, err := os.ReadFile(filepath.Join(root, "dist", "translate.bat"))
	require.NoError(t, err)
	assert.Contains(t, string(bat), "ini-translate.exe translate\r\n")
}

func TestPackageWithoutDictionary(t *testing.T) {
	root, opts := newPackageRoot(t)
	require.NoError(t, os.Remove(filepath.Join(root, DictionaryFile)))
	require.NoError(t, os.Remove(filepath.Join(root, InputDir, ExampleIniFile)))

	ev := newEvents()
	res, err := Package(opts, ev)
	require.NoError(t, err)
	assert.Zero(t, res.Dictionary)
	assert.Contains(t, ev.missing, DictionaryFile)
	assert.Contains(t, ev.created, "input/example.ini")
}

func TestArchiveTar(t *testing.T) {
	for _, tc := range []struct {
		format Format
		comp   compression.CompressionType
	}{
		{FormatTarXZ, compression.TypeXZ},
		{FormatTarZS, compression.TypeZSTD},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "input"), 0755))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "input", "a.ini"), []byte("[a]\nk = v\n"), 0644))

			dst := filepath.Join(t.TempDir(), "out."+string(tc.format))
			size, err := Archive(dir, dst, tc.format)
			require.NoError(t, err)
			assert.Positive(t, size)

			f, err := os.Open(dst)
			require.NoError(t, err)
			defer f.Close()
			rc, err := compression.Default().NewReader(tc.comp, f)
			require.NoError(t, err)
			defer rc.Close()

			tr := tar.NewReader(rc)
			contents := map[string]string{}
			for {
				hdr, err := tr.Next()
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				data, err := io.ReadAll(tr)
				require.NoError(t, err)
				contents[hdr.Name] = string(data)
			}
			assert.Equal(t, map[string]string{"input/": "", "input/a.ini": "[a]\nk = v\n"}, contents)
		})
	}
}

func TestArchiveUnsupportedFormat(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.rar")
	_, err := Archive(t.TempDir(), dst, Format("rar"))
	assert.Error(t, err)
	assert.NoFileExists(t, dst)
}

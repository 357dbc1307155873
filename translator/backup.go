package translator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xishang0128/ini-translate-go/common/file"
)

// BackupManager keeps a flat copy of the input directory before it is translated.
type BackupManager struct {
	backupDir string
}

// NewBackupManager creates a BackupManager writing into backupDir.
func NewBackupManager(backupDir string) *BackupManager {
	return &BackupManager{backupDir: backupDir}
}

// Dir returns the backup directory.
func (m *BackupManager) Dir() string {
	return m.backupDir
}

// Snapshot replaces the backup directory with a copy of every regular file
// directly inside srcDir. It reports whether an old backup was removed and
// how many files were copied.
func (m *BackupManager) Snapshot(srcDir string) (cleared bool, copied int, err error) {
	if _, statErr := os.Stat(m.backupDir); statErr == nil {
		if err := os.RemoveAll(m.backupDir); err != nil {
			return false, 0, fmt.Errorf("remove old backup: %w", err)
		}
		cleared = true
	}
	if err := os.MkdirAll(m.backupDir, 0755); err != nil {
		return cleared, 0, fmt.Errorf("create backup directory: %w", err)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return cleared, 0, err
	}
	for _, entry := range entries {
		// Type() is taken from Lstat, so symlinks are skipped like directories.
		if !entry.Type().IsRegular() {
			continue
		}
		src := filepath.Join(srcDir, entry.Name())
		if err := file.CopyFile(src, filepath.Join(m.backupDir, entry.Name())); err != nil {
			return cleared, copied, fmt.Errorf("backup %s: %w", entry.Name(), err)
		}
		copied++
	}
	return cleared, copied, nil
}

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/xishang0128/ini-translate-go/common/file"
	"github.com/xishang0128/ini-translate-go/translator"
)

// Format is the archive format produced by Package.
type Format string

const (
	FormatZip   Format = "zip"
	FormatTarXZ Format = "tar.xz"
	FormatTarZS Format = "tar.zst"
)

// ParseFormat accepts zip, tar.xz and tar.zst.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatZip, FormatTarXZ, FormatTarZS:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported archive format: %s", s)
	}
}

// PackageOptions configures Package.
type PackageOptions struct {
	// Root is the workspace the dictionary and input files are taken from.
	Root    string
	DistDir string
	Format  Format
	// Output is the archive path. Defaults to ini-translate-tool.<format>.
	Output string
	// Executable is copied into the distribution. Defaults to the running
	// binary.
	Executable string
	// BinaryName is the executable's name inside the distribution.
	BinaryName string
}

// PackageResult describes the archive written by Package.
type PackageResult struct {
	Archive    string
	Size       int64
	Dictionary int
}

func (o PackageOptions) withDefaults() (PackageOptions, error) {
	if o.Root == "" {
		o.Root = "."
	}
	if o.DistDir == "" {
		o.DistDir = filepath.Join(o.Root, "dist")
	}
	if o.Format == "" {
		o.Format = FormatZip
	}
	if o.Output == "" {
		o.Output = filepath.Join(o.Root, "ini-translate-tool."+string(o.Format))
	}
	if o.Executable == "" {
		exe, err := os.Executable()
		if err != nil {
			return o, fmt.Errorf("locate executable: %w", err)
		}
		o.Executable = exe
	}
	if o.BinaryName == "" {
		o.BinaryName = "ini-translate"
		if runtime.GOOS == "windows" {
			o.BinaryName += ".exe"
		}
	}
	return o, nil
}

// Package lays out a self-contained distribution in opts.DistDir and
// archives it.
func Package(opts PackageOptions, rep Reporter) (*PackageResult, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if rep == nil {
		rep = NopReporter{}
	}
	res := &PackageResult{Archive: opts.Output}

	for _, dir := range []string{InputDir, ExportDir, BackupDir, ExcelDir} {
		if err := ensureDir(opts.DistDir, dir, rep); err != nil {
			return nil, err
		}
	}

	if err := file.CopyFile(opts.Executable, filepath.Join(opts.DistDir, opts.BinaryName)); err != nil {
		return nil, fmt.Errorf("copy executable: %w", err)
	}
	rep.Copied(opts.BinaryName, 1)

	dictPath := filepath.Join(opts.Root, DictionaryFile)
	if _, err := os.Stat(dictPath); err == nil {
		dict, err := translator.LoadDictionary(dictPath)
		if err != nil {
			return nil, err
		}
		if err := file.CopyFile(dictPath, filepath.Join(opts.DistDir, DictionaryFile)); err != nil {
			return nil, err
		}
		res.Dictionary = dict.Len()
		rep.Copied(DictionaryFile, dict.Len())
	} else {
		rep.Missing(DictionaryFile)
	}

	for _, dir := range []string{InputDir, ExcelDir} {
		n, err := copyDirFiles(filepath.Join(opts.Root, dir), filepath.Join(opts.DistDir, dir))
		if err != nil {
			return nil, fmt.Errorf("copy %s: %w", dir, err)
		}
		rep.Copied(dir, n)
		if dir == InputDir && n == 0 {
			if err := createFile(opts.DistDir, filepath.Join(InputDir, ExampleIniFile), []byte(ExampleIni), rep); err != nil {
				return nil, err
			}
		}
	}

	if err := writeLauncher(opts.DistDir, opts.BinaryName, rep); err != nil {
		return nil, err
	}
	if err := createFile(opts.DistDir, "README.txt", []byte(readme(opts.BinaryName)), rep); err != nil {
		return nil, err
	}

	size, err := Archive(opts.DistDir, opts.Output, opts.Format)
	if err != nil {
		return nil, err
	}
	res.Size = size
	return res, nil
}

func writeLauncher(distDir, binary string, rep Reporter) error {
	if runtime.GOOS != "windows" && !strings.HasSuffix(binary, ".exe") {
		script := fmt.Sprintf("#!/bin/sh\ncd \"$(dirname \"$0\")\" || exit 1\n./%s translate\n", binary)
		if err := os.WriteFile(filepath.Join(distDir, "translate.sh"), []byte(script), 0755); err != nil {
			return err
		}
		rep.Created("translate.sh")
		return nil
	}
	return createFile(distDir, "translate.bat", []byte(strings.ReplaceAll(batchTemplate, "{{bin}}", binary)), rep)
}

// Batch files stay ASCII so cmd.exe renders them under any code page.
const batchTemplate = "@echo off\r\n" +
	"chcp 65001 >nul\r\n" +
	"title INI Translate - Direct Mode\r\n" +
	"\r\n" +
	"echo.\r\n" +
	"echo ========================================\r\n" +
	"echo      INI Translation Tool - Direct Mode\r\n" +
	"echo ========================================\r\n" +
	"echo.\r\n" +
	"echo Start time: %date% %time%\r\n" +
	"echo.\r\n" +
	"\r\n" +
	"if not exist \"{{bin}}\" (\r\n" +
	"    echo ERROR: {{bin}} not found!\r\n" +
	"    pause\r\n" +
	"    exit /b 1\r\n" +
	")\r\n" +
	"\r\n" +
	"{{bin}} translate\r\n" +
	"\r\n" +
	"echo.\r\n" +
	"echo End time: %date% %time%\r\n" +
	"echo Output files: export directory\r\n" +
	"echo Backup files: backup directory\r\n" +
	"echo.\r\n" +
	"pause\r\n"

func readme(binary string) string {
	return `# INI文件翻译工具

## 简介
这是一个独立的INI文件批量翻译工具，无需安装任何环境，下载即用。

## 快速开始
1. 将需要翻译的INI文件放入 input 文件夹
2. 运行 translate.bat (Windows) 或 translate.sh
3. 查看 export 文件夹中的结果
4. 编辑 translations.json 增加翻译条目

## 文件结构
- ` + binary + ` - 翻译核心程序
- translations.json - 翻译字典
- input/ - 输入目录（放置INI文件）
- export/ - 输出目录（翻译结果）
- backup/ - 备份目录（自动备份）
- excel/ - Excel目录（翻译字典）
`
}

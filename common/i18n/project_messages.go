package i18n

// ProjectMessages holds init, clean and package command translatable strings
type ProjectMessages struct {
	InitShort    string
	InitLong     string
	CleanShort   string
	CleanLong    string
	PackageShort string
	PackageLong  string

	FlagDist   string
	FlagFormat string

	Created      string
	Exists       string
	Copied       string
	Removed      string
	Missing      string
	RemoveFailed string

	InitCompleted  string
	InitUsage      string
	CleanConfirm   string
	CleanCancelled string
	CleanCompleted string
	Packaged       string
}

// English project messages
var EnglishProjectMessages = ProjectMessages{
	InitShort:    "Create the workspace directories and example files",
	InitLong:     "Create input/, export/ and backup/ plus an example translations.json and input/example.ini. Existing files are kept.",
	CleanShort:   "Remove the export and backup directories",
	CleanLong:    "Remove export/ and backup/ after confirmation.",
	PackageShort: "Build a distributable archive",
	PackageLong:  "Lay out a self-contained distribution with this executable, the dictionary and the input files, then archive it.",

	FlagDist:   "distribution directory",
	FlagFormat: "archive format (zip, tar.xz or tar.zst)",

	Created:      "Created %s",
	Exists:       "Already exists: %s",
	Copied:       "Copied %s (%d)",
	Removed:      "Removed %s",
	Missing:      "Not found: %s",
	RemoveFailed: "Failed to remove %s: %v",

	InitCompleted: "Workspace initialized",
	InitUsage: `Next steps:
  1. Put the .ini files to translate in input/
  2. Add entries to translations.json
  3. Run: ini-translate translate`,
	CleanConfirm:   "Remove export/ and backup/?",
	CleanCancelled: "Cancelled",
	CleanCompleted: "Clean completed",
	Packaged:       "Archive created: %s (%.2f MB)",
}

// Chinese project messages
var ChineseProjectMessages = ProjectMessages{
	InitShort:    "创建工作目录和示例文件",
	InitLong:     "创建 input/、export/、backup/ 目录以及示例 translations.json 和 input/example.ini。已存在的文件保持不变。",
	CleanShort:   "删除输出和备份目录",
	CleanLong:    "确认后删除 export/ 和 backup/。",
	PackageShort: "构建分发压缩包",
	PackageLong:  "生成包含本程序、翻译字典和输入文件的独立分发目录并打包。",

	FlagDist:   "分发目录",
	FlagFormat: "压缩包格式 (zip、tar.xz 或 tar.zst)",

	Created:      "✅ 已创建: %s",
	Exists:       "📁 已存在: %s",
	Copied:       "✅ 已复制 %s (%d)",
	Removed:      "✅ 已删除: %s",
	Missing:      "📁 不存在: %s",
	RemoveFailed: "❌ 删除失败 %s: %v",

	InitCompleted: "🎉 项目初始化完成!",
	InitUsage: `💡 使用方法:
   1. 将需要翻译的.ini文件放入 input/ 目录
   2. 编辑 translations.json 文件，添加翻译词条
   3. 运行: ini-translate translate`,
	CleanConfirm:   "确定删除 export/ 和 backup/ 吗?",
	CleanCancelled: "已取消",
	CleanCompleted: "🧹 清理完成",
	Packaged:       "✅ 压缩包已创建: %s (%.2f MB)",
}

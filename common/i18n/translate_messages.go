package i18n

// TranslateMessages holds translate command translatable strings
type TranslateMessages struct {
	Use   string
	Short string
	Long  string

	FlagInput      string
	FlagExport     string
	FlagBackup     string
	FlagDictionary string
	FlagWorkers    string

	DictionaryLoaded string
	BackupCleared    string
	BackupCreated    string
	FilesFound       string
	FileFailed       string
	FileWarning      string
	FileChange       string
	Statistics       string
	StatSucceeded    string
	StatFailed       string
	StatReplacements string
	StatElapsed      string
	Completed        string
	ReplacementsUnit string
}

// English translate messages
var EnglishTranslateMessages = TranslateMessages{
	Use:   "translate",
	Short: "Translate every INI file in the input directory",
	Long: `Translate backs up the input directory, applies the dictionary to
every .ini file in it and writes the results to the export directory.
Dictionary entries are applied in file order as literal replacements.`,

	FlagInput:      "input directory",
	FlagExport:     "export directory",
	FlagBackup:     "backup directory",
	FlagDictionary: "translation dictionary (JSON)",
	FlagWorkers:    "number of files translated in parallel",

	DictionaryLoaded: "Loaded dictionary with %d entries",
	BackupCleared:    "Removed previous backup %s",
	BackupCreated:    "Backed up %d files to %s",
	FilesFound:       "Found %d INI files",
	FileFailed:       "%s: %v",
	FileWarning:      "%s: translated file no longer parses as INI: %v",
	FileChange:       "%s: %q -> %q (%d)",
	Statistics:       "Statistics:",
	StatSucceeded:    "  Succeeded:    %d",
	StatFailed:       "  Failed:       %d",
	StatReplacements: "  Replacements: %d",
	StatElapsed:      "  Elapsed:      %s",
	Completed:        "Translation completed",
	ReplacementsUnit: "replacements",
}

// Chinese translate messages
var ChineseTranslateMessages = TranslateMessages{
	Use:   "translate",
	Short: "翻译输入目录中的所有 INI 文件",
	Long: `translate 先备份输入目录，然后对其中每个 .ini 文件应用翻译字典，
并把结果写入输出目录。字典词条按文件中的顺序进行字面替换。`,

	FlagInput:      "输入目录",
	FlagExport:     "输出目录",
	FlagBackup:     "备份目录",
	FlagDictionary: "翻译字典 (JSON)",
	FlagWorkers:    "并行翻译的文件数",

	DictionaryLoaded: "已加载翻译字典，共 %d 个词条",
	BackupCleared:    "已删除旧备份 %s",
	BackupCreated:    "已备份 %d 个文件到 %s",
	FilesFound:       "找到 %d 个 INI 文件",
	FileFailed:       "%s: %v",
	FileWarning:      "%s: 翻译后的文件无法解析为 INI: %v",
	FileChange:       "%s: %q -> %q (%d)",
	Statistics:       "📊 翻译统计:",
	StatSucceeded:    "  成功: %d",
	StatFailed:       "  失败: %d",
	StatReplacements: "  替换: %d",
	StatElapsed:      "  耗时: %s",
	Completed:        "🎉 翻译完成!",
	ReplacementsUnit: "处替换",
}

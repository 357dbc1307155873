package i18n

// DiffMessages holds diff command translatable strings
type DiffMessages struct {
	Use   string
	Short string
	Long  string

	FlagJSON    string
	FlagDict    string
	FlagPreview string

	MissingSection string
	MissingKey     string
	Saved          string
	SavedJSON      string
	SavedDict      string
	Found          string
	PreviewTitle   string
	PreviewEntry   string
}

// English diff messages
var EnglishDiffMessages = DiffMessages{
	Use:   "diff <original.ini> <translated.ini>",
	Short: "Extract translated values from a pair of INI files",
	Long: `Diff parses an original INI file and its translated copy, matches
their sections and keys, and reports every value that changed together
with the line numbers it was found on. Inputs may be local paths or
http(s) URLs and may be compressed (.xz, .bz2, .zst, .br).`,

	FlagJSON:    "also write the report as JSON to this file",
	FlagDict:    "also write an english -> chinese dictionary usable by translate",
	FlagPreview: "number of entries to preview",

	MissingSection: "Section [%s] is missing from the translated file, skipped",
	MissingKey:     "Key %q of section [%s] is missing from the translated file, skipped",
	Saved:          "Report saved to %s",
	SavedJSON:      "JSON report saved to %s",
	SavedDict:      "Dictionary with %d entries saved to %s",
	Found:          "Found %d translation pairs",
	PreviewTitle:   "Preview:",
	PreviewEntry:   "  %s：%s = %s, %s",
}

// Chinese diff messages
var ChineseDiffMessages = DiffMessages{
	Use:   "diff <original.ini> <translated.ini>",
	Short: "从一对 INI 文件中提取翻译值",
	Long: `diff 解析原始 INI 文件及其翻译版本，匹配节和键，
输出所有值发生变化的条目及其所在行号。
输入可以是本地路径或 http(s) 地址，也可以是压缩文件 (.xz, .bz2, .zst, .br)。`,

	FlagJSON:    "同时将报告以 JSON 格式写入此文件",
	FlagDict:    "同时写出可供 translate 使用的英中字典",
	FlagPreview: "预览的条目数",

	MissingSection: "翻译文件中缺少节 [%s]，已跳过",
	MissingKey:     "翻译文件的节 [%[2]s] 中缺少键 %[1]q，已跳过",
	Saved:          "报告已保存到 %s",
	SavedJSON:      "JSON 报告已保存到 %s",
	SavedDict:      "包含 %d 个词条的字典已保存到 %s",
	Found:          "找到 %d 个翻译对",
	PreviewTitle:   "预览:",
	PreviewEntry:   "  %s：%s = %s, %s",
}

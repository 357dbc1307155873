package i18n

// CommonMessages holds common translatable strings
type CommonMessages struct {
	// Error messages
	ErrorFileNotFound string
	ErrorUnexpected   string
	ErrorInvalidFlag  string

	// Global flag descriptions
	FlagLang      string
	FlagUserAgent string
	FlagTimeout   string
	FlagVerbose   string

	// Common flag descriptions
	FlagOut     string
	FlagYes     string
	ElapsedTime string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorFileNotFound: "File not found: %v",
	ErrorUnexpected:   "Error: %v",
	ErrorInvalidFlag:  "Invalid value for --%s: %v",

	FlagLang:      "interface language (en or zh), detected from LANG by default",
	FlagUserAgent: "User-Agent for http:// and https:// inputs",
	FlagTimeout:   "timeout for remote inputs",
	FlagVerbose:   "show per-line diagnostics",

	FlagOut:     "output file",
	FlagYes:     "do not ask for confirmation",
	ElapsedTime: "Elapsed time: %s",
}

// Chinese common messages
var ChineseCommonMessages = CommonMessages{
	ErrorFileNotFound: "文件未找到: %v",
	ErrorUnexpected:   "错误: %v",
	ErrorInvalidFlag:  "--%s 的值无效: %v",

	FlagLang:      "界面语言 (en 或 zh)，默认根据 LANG 检测",
	FlagUserAgent: "http:// 和 https:// 输入使用的 User-Agent",
	FlagTimeout:   "远程输入的超时时间",
	FlagVerbose:   "显示逐行诊断信息",

	FlagOut:     "输出文件",
	FlagYes:     "不询问确认",
	ElapsedTime: "耗时: %s",
}

package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle           string
	VersionLabel           string
	GoVersionLabel         string
	PlatformLabel          string
	CGOLabel               string
	CompressionTitle       string
	CompressionCGOMessage  string
	CompressionPureMessage string
	CompressionPureAdvice  string
	VersionCmdShort        string
	VersionCmdLong         string
	SelfTestCmdShort       string
	SelfTestCmdLong        string
	SelfTestRunning        string
	SelfTestPassed         string
	SelfTestFailed         string
	SelfTestExpected       string
	SelfTestActual         string
	SelfTestSummary        string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "Bilingual INI translation toolkit",
	AppLongDescription: `A toolkit for preparing and applying English/Chinese translations of INI files.

It can split an interleaved bilingual text into its two languages,
extract the values that differ between an original and a translated
INI file, and batch-translate INI files with a dictionary.`,

	VersionTitle:           "ini-translate",
	VersionLabel:           "Version",
	GoVersionLabel:         "Go Version",
	PlatformLabel:          "Platform",
	CGOLabel:               "CGO",
	CompressionTitle:       "Compression implementations:",
	CompressionCGOMessage:  "Some decompressors use the faster CGO implementation",
	CompressionPureMessage: "All decompressors use the pure Go implementation",
	CompressionPureAdvice:  "Rebuild with CGO and the cgo_compression tag for faster decompression",
	VersionCmdShort:        "Show version information",
	VersionCmdLong:         "Display version information including compression implementation details",
	SelfTestCmdShort:       "Run the built-in translation checks",
	SelfTestCmdLong:        "Apply built-in dictionaries to sample text and compare the result with the expected output",
	SelfTestRunning:        "Running translation self-test...",
	SelfTestPassed:         "✅ Test %d: %s",
	SelfTestFailed:         "❌ Test %d: %s",
	SelfTestExpected:       "   Expected: %q",
	SelfTestActual:         "   Actual:   %q",
	SelfTestSummary:        "%d/%d tests passed",
}

// Chinese app messages
var ChineseAppMessages = AppMessages{
	AppDescription: "双语 INI 翻译工具",
	AppLongDescription: `用于准备和应用 INI 文件中英文翻译的工具。

它可以把中英交替的文本拆分为两种语言，
提取原始与翻译 INI 文件之间不同的值，
并使用翻译字典批量翻译 INI 文件。`,

	VersionTitle:           "ini-translate",
	VersionLabel:           "版本",
	GoVersionLabel:         "Go 版本",
	PlatformLabel:          "平台",
	CGOLabel:               "CGO",
	CompressionTitle:       "压缩算法实现:",
	CompressionCGOMessage:  "部分解压算法使用高性能 CGO 实现",
	CompressionPureMessage: "所有解压算法使用标准 Pure Go 实现",
	CompressionPureAdvice:  "启用 CGO 并使用 cgo_compression 标签重新构建可获得更好的性能",
	VersionCmdShort:        "显示版本信息",
	VersionCmdLong:         "显示版本信息，包括压缩算法实现详情",
	SelfTestCmdShort:       "运行内置翻译测试",
	SelfTestCmdLong:        "使用内置字典翻译示例文本并与期望结果比较",
	SelfTestRunning:        "🧪 测试翻译功能...",
	SelfTestPassed:         "✅ 测试 %d: %s",
	SelfTestFailed:         "❌ 测试 %d: %s",
	SelfTestExpected:       "   期望: %q",
	SelfTestActual:         "   实际: %q",
	SelfTestSummary:        "%d/%d 项测试通过",
}

package i18n

// SplitMessages holds split command translatable strings
type SplitMessages struct {
	Use   string
	Short string
	Long  string

	FlagOdd      string
	FlagEven     string
	FlagEncoding string

	TryingEncoding   string
	EncodingFailed   string
	LineSkipped      string
	LineAssigned     string
	ReadFinished     string
	BucketCounts     string
	Written          string
	WarnNothing      string
	WarnOddEmpty     string
	WarnEvenEmpty    string
	Succeeded        string
	AllEncodingsFail string
	BucketOdd        string
	BucketEven       string
}

// English split messages
var EnglishSplitMessages = SplitMessages{
	Use:   "split <input>",
	Short: "Split an interleaved bilingual text into two files",
	Long: `Split reads a text file whose non-blank lines alternate between two
languages and writes the 1st, 3rd, 5th... lines to one file and the
2nd, 4th, 6th... lines to another. Blank lines are ignored. Each
encoding in --encoding is tried in turn until one decodes the input.`,

	FlagOdd:      "output file for odd lines (English)",
	FlagEven:     "output file for even lines (Chinese)",
	FlagEncoding: "input encodings to try, in order",

	TryingEncoding:   "Trying encoding %s",
	EncodingFailed:   "Encoding %s failed: %v",
	LineSkipped:      "Line %d: blank, skipped",
	LineAssigned:     "Line %d -> %s: %s",
	ReadFinished:     "Read %d lines, %d non-blank",
	BucketCounts:     "English lines: %d, Chinese lines: %d",
	Written:          "Wrote %s lines to %s",
	WarnNothing:      "No non-blank lines were processed",
	WarnOddEmpty:     "No English lines found, the input may not alternate as expected",
	WarnEvenEmpty:    "No Chinese lines found, the input may not alternate as expected",
	Succeeded:        "Split completed",
	AllEncodingsFail: "All encodings failed: %v",
	BucketOdd:        "English",
	BucketEven:       "Chinese",
}

// Chinese split messages
var ChineseSplitMessages = SplitMessages{
	Use:   "split <input>",
	Short: "将中英交替的文本拆分为两个文件",
	Long: `split 读取非空行在两种语言之间交替的文本文件，
把第 1、3、5... 行写入一个文件，把第 2、4、6... 行写入另一个文件。
空行会被忽略。--encoding 中的编码会依次尝试，直到成功解码输入。`,

	FlagOdd:      "奇数行（英文）输出文件",
	FlagEven:     "偶数行（中文）输出文件",
	FlagEncoding: "依次尝试的输入编码",

	TryingEncoding:   "尝试使用编码 %s",
	EncodingFailed:   "编码 %s 失败: %v",
	LineSkipped:      "第 %d 行: 空行，跳过",
	LineAssigned:     "第 %d 行 -> %s: %s",
	ReadFinished:     "共读取 %d 行，非空行 %d 行",
	BucketCounts:     "英文行数: %d，中文行数: %d",
	Written:          "%s行已写入 %s",
	WarnNothing:      "没有处理任何非空行",
	WarnOddEmpty:     "没有找到英文行，输入可能不是交替格式",
	WarnEvenEmpty:    "没有找到中文行，输入可能不是交替格式",
	Succeeded:        "拆分完成",
	AllEncodingsFail: "所有编码均失败: %v",
	BucketOdd:        "英文",
	BucketEven:       "中文",
}

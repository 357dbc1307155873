package translator

import orderedmap "github.com/wk8/go-ordered-map/v2"

// SelfTestCase is one built-in replacement check.
type SelfTestCase struct {
	Name     string
	Entries  [][2]string
	Input    string
	Expected string
}

// SelfTestResult is the outcome of a SelfTestCase.
type SelfTestResult struct {
	Case   SelfTestCase
	Actual string
	Passed bool
}

// SelfTestCases are the checks run by the selftest command.
var SelfTestCases = []SelfTestCase{
	{
		Name:     "basic replacement",
		Entries:  [][2]string{{"Hello World", "你好世界"}, {"Test String", "测试字符串"}},
		Input:    "Hello World! This is a Test String.",
		Expected: "你好世界! This is a 测试字符串.",
	},
	{
		Name:     "regex metacharacters are literal",
		Entries:  [][2]string{{"RPM (max)", "最大转速"}, {"a.b", "点"}},
		Input:    "RPM (max) = 7000; axb = a.b",
		Expected: "最大转速 = 7000; axb = 点",
	},
	{
		Name:     "entries apply in order",
		Entries:  [][2]string{{"Idle Speed", "怠速"}, {"Speed", "速度"}},
		Input:    "Idle Speed = 850\nSpeed = 1",
		Expected: "怠速 = 850\n速度 = 1",
	},
	{
		Name:     "section headers and values",
		Entries:  [][2]string{{"Engine", "引擎"}},
		Input:    "[Engine]\nEngine Type = DEFAULT",
		Expected: "[引擎]\n引擎 Type = DEFAULT",
	},
}

// RunSelfTest runs every case in cases.
func RunSelfTest(cases []SelfTestCase) []SelfTestResult {
	results := make([]SelfTestResult, 0, len(cases))
	for _, c := range cases {
		entries := orderedmap.New[string, string]()
		for _, e := range c.Entries {
			entries.Set(e[0], e[1])
		}
		actual, _ := NewDictionary(entries).Apply(c.Input)
		results = append(results, SelfTestResult{Case: c, Actual: actual, Passed: actual == c.Expected})
	}
	return results
}

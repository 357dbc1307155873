package main

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/splitter"
)

func TestLangFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"split", "in.txt"}, ""},
		{[]string{"--lang", "zh", "split"}, "zh"},
		{[]string{"diff", "--lang=en", "a", "b"}, "en"},
		{[]string{"split", "--", "--lang", "zh"}, ""},
		{[]string{"--lang"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, langFromArgs(tt.args), "%v", tt.args)
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"split", "diff", "translate", "init", "clean", "package", "selftest", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func newTestReporter(t *testing.T) (*logReporter, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return &logReporter{log: logrus.NewEntry(logger)}, hook
}

func TestLogReporterLevels(t *testing.T) {
	i18n.SetLanguage(i18n.English)
	rep, hook := newTestReporter(t)

	rep.LineSkipped(3)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, "Line 3: blank, skipped", hook.LastEntry().Message)

	rep.LineAssigned(4, splitter.Even, "你好")
	assert.Equal(t, "Line 4 -> Chinese: 你好", hook.LastEntry().Message)

	rep.Warn(splitter.WarnOddEmpty)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	rep.MissingKey("Idle Speed", "Engine")
	assert.Equal(t, `Key "Idle Speed" of section [Engine] is missing from the translated file, skipped`, hook.LastEntry().Message)

	rep.RemoveFailed("export", errors.New("busy"))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)

	rep.BackupCreated("backup", true, 2)
	require.Len(t, hook.AllEntries(), 7)
	assert.Equal(t, "Backed up 2 files to backup", hook.LastEntry().Message)
}

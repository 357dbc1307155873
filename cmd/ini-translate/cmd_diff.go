package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/inidiff"
)

var (
	diffOut     string
	diffJSON    string
	diffDict    string
	diffPreview int
)

func initDiffCmd() {
	diffCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Diff.Use,
		Short: i18n.I18nMsg.Diff.Short,
		Long:  i18n.I18nMsg.Diff.Long,
		Args:  cobra.ExactArgs(2),
		Run:   runDiff,
	}

	diffCmd.Flags().StringVarP(&diffOut, "out", "o", "translation_pairs.txt", i18n.I18nMsg.Common.FlagOut)
	diffCmd.Flags().StringVarP(&diffJSON, "json", "j", "", i18n.I18nMsg.Diff.FlagJSON)
	diffCmd.Flags().StringVar(&diffDict, "dict", "", i18n.I18nMsg.Diff.FlagDict)
	diffCmd.Flags().IntVar(&diffPreview, "preview", 5, i18n.I18nMsg.Diff.FlagPreview)

	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) {
	report, err := inidiff.ExtractDifferences(args[0], args[1], newLogReporter("diff"))
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Fatalf(i18n.I18nMsg.Common.ErrorFileNotFound, err)
	}
	if err != nil {
		logrus.Fatalf(i18n.I18nMsg.Common.ErrorUnexpected, err)
	}

	if err := inidiff.SaveReport(report, diffOut); err != nil {
		logrus.Fatalf(i18n.I18nMsg.Common.ErrorUnexpected, err)
	}
	logrus.Infof(i18n.I18nMsg.Diff.Saved, diffOut)

	if diffJSON != "" {
		if err := inidiff.SaveJSON(report, diffJSON); err != nil {
			logrus.Fatalf(i18n.I18nMsg.Common.ErrorUnexpected, err)
		}
		logrus.Infof(i18n.I18nMsg.Diff.SavedJSON, diffJSON)
	}
	if diffDict != "" {
		if err := inidiff.SaveDictionary(report, diffDict); err != nil {
			logrus.Fatalf(i18n.I18nMsg.Common.ErrorUnexpected, err)
		}
		logrus.Infof(i18n.I18nMsg.Diff.SavedDict, report.Dictionary().Len(), diffDict)
	}

	fmt.Printf(i18n.I18nMsg.Diff.Found+"\n", report.Len())
	if preview := report.Preview(diffPreview); len(preview) > 0 {
		fmt.Println(i18n.I18nMsg.Diff.PreviewTitle)
		for _, rec := range preview {
			fmt.Printf(i18n.I18nMsg.Diff.PreviewEntry+"\n", rec.Label, rec.Key, rec.En, rec.Zh)
		}
	}
}

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/common/textenc"
	"github.com/xishang0128/ini-translate-go/splitter"
)

var (
	splitOdd       string
	splitEven      string
	splitEncodings []string
)

func initSplitCmd() {
	splitCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Split.Use,
		Short: i18n.I18nMsg.Split.Short,
		Long:  i18n.I18nMsg.Split.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runSplit,
	}

	splitCmd.Flags().StringVar(&splitOdd, "odd", "english_lines.txt", i18n.I18nMsg.Split.FlagOdd)
	splitCmd.Flags().StringVar(&splitEven, "even", "chinese_lines.txt", i18n.I18nMsg.Split.FlagEven)
	splitCmd.Flags().StringSliceVarP(&splitEncodings, "encoding", "e", textenc.DefaultFallbacks, i18n.I18nMsg.Split.FlagEncoding)

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) {
	rep := newLogReporter("split")
	res, err := splitter.SplitWithFallback(args[0], splitOdd, splitEven, textenc.Normalize(splitEncodings), rep)
	if err != nil {
		logrus.Fatalf(i18n.I18nMsg.Split.AllEncodingsFail, err)
	}
	logrus.WithField("encoding", res.Encoding).Debug("split done")
}

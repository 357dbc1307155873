package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/project"
)

var cleanYes bool

func initCleanCmd() {
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: i18n.I18nMsg.Project.CleanShort,
		Long:  i18n.I18nMsg.Project.CleanLong,
		Args:  cobra.NoArgs,
		Run:   runClean,
	}

	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, i18n.I18nMsg.Common.FlagYes)

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) {
	if !cleanYes {
		confirmed := false
		prompt := &survey.Confirm{Message: i18n.I18nMsg.Project.CleanConfirm}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			logrus.Fatalf(i18n.I18nMsg.Common.ErrorUnexpected, err)
		}
		if !confirmed {
			fmt.Println(i18n.I18nMsg.Project.CleanCancelled)
			return
		}
	}

	if err := project.Clean(".", nil, newLogReporter("clean")); err != nil {
		logrus.Fatalf(i18n.I18nMsg.Common.ErrorUnexpected, err)
	}
	fmt.Println(i18n.I18nMsg.Project.CleanCompleted)
}

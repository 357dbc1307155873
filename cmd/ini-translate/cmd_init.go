package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/project"
)

func initInitCmd() {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: i18n.I18nMsg.Project.InitShort,
		Long:  i18n.I18nMsg.Project.InitLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := project.Init(".", newLogReporter("init")); err != nil {
				logrus.Fatalf(i18n.I18nMsg.Common.ErrorUnexpected, err)
			}
			fmt.Println(i18n.I18nMsg.Project.InitCompleted)
			fmt.Println(i18n.I18nMsg.Project.InitUsage)
		},
	}

	rootCmd.AddCommand(initCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/translator"
)

func initSelfTestCmd() {
	selfTestCmd := &cobra.Command{
		Use:   "selftest",
		Short: i18n.I18nMsg.App.SelfTestCmdShort,
		Long:  i18n.I18nMsg.App.SelfTestCmdLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(i18n.I18nMsg.App.SelfTestRunning)
			fmt.Println()

			passed := 0
			results := translator.RunSelfTest(translator.SelfTestCases)
			for i, r := range results {
				if r.Passed {
					passed++
					fmt.Printf(i18n.I18nMsg.App.SelfTestPassed+"\n", i+1, r.Case.Name)
					continue
				}
				fmt.Printf(i18n.I18nMsg.App.SelfTestFailed+"\n", i+1, r.Case.Name)
				fmt.Printf(i18n.I18nMsg.App.SelfTestExpected+"\n", r.Case.Expected)
				fmt.Printf(i18n.I18nMsg.App.SelfTestActual+"\n", r.Actual)
			}

			fmt.Println()
			fmt.Printf(i18n.I18nMsg.App.SelfTestSummary+"\n", passed, len(results))
			if passed != len(results) {
				os.Exit(1)
			}
		},
	}

	rootCmd.AddCommand(selfTestCmd)
}

package main

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/compression"
	"github.com/xishang0128/ini-translate-go/constant"
)

func initVersionCmd() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: i18n.I18nMsg.App.VersionCmdShort,
		Long:  i18n.I18nMsg.App.VersionCmdLong,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s\n", i18n.I18nMsg.App.VersionTitle)
			fmt.Printf("%s: %s(%s)\n", i18n.I18nMsg.App.VersionLabel, constant.Version, constant.BuildTime)
			fmt.Printf("%s: %s\n", i18n.I18nMsg.App.GoVersionLabel, runtime.Version())
			fmt.Printf("%s: %s/%s\n", i18n.I18nMsg.App.PlatformLabel, runtime.GOOS, runtime.GOARCH)
			fmt.Printf("%s: %v\n", i18n.I18nMsg.App.CGOLabel, compression.GetBuildInfo()["cgo_enabled"])

			fmt.Printf("\n%s\n", i18n.I18nMsg.App.CompressionTitle)
			implementations := compression.Default().GetImplementationInfo()

			types := make([]compression.CompressionType, 0, len(implementations))
			for t := range implementations {
				types = append(types, t)
			}
			sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

			hasCGO := false
			for _, t := range types {
				impl := implementations[t]
				if strings.HasPrefix(impl, "CGO") {
					hasCGO = true
				}
				fmt.Printf("  %-8s: %s\n", t, impl)
			}

			fmt.Println()
			if hasCGO {
				fmt.Println(i18n.I18nMsg.App.CompressionCGOMessage)
			} else {
				fmt.Println(i18n.I18nMsg.App.CompressionPureMessage)
				fmt.Println(i18n.I18nMsg.App.CompressionPureAdvice)
			}
		},
	}

	rootCmd.AddCommand(versionCmd)
}

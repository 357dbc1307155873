package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/project"
)

var (
	packageDist   string
	packageFormat string
	packageOut    string
)

func initPackageCmd() {
	packageCmd := &cobra.Command{
		Use:   "package",
		Short: i18n.I18nMsg.Project.PackageShort,
		Long:  i18n.I18nMsg.Project.PackageLong,
		Args:  cobra.NoArgs,
		Run:   runPackage,
	}

	packageCmd.Flags().StringVarP(&packageDist, "dist", "d", "dist", i18n.I18nMsg.Project.FlagDist)
	packageCmd.Flags().StringVarP(&packageFormat, "format", "f", string(project.FormatZip), i18n.I18nMsg.Project.FlagFormat)
	packageCmd.Flags().StringVarP(&packageOut, "out", "o", "", i18n.I18nMsg.Common.FlagOut)

	rootCmd.AddCommand(packageCmd)
}

func runPackage(cmd *cobra.Command, args []string) {
	format, err := project.ParseFormat(packageFormat)
	if err != nil {
		logrus.Fatalf(i18n.I18nMsg.Common.ErrorInvalidFlag, "format", err)
	}

	res, err := project.Package(project.PackageOptions{
		Root:    ".",
		DistDir: packageDist,
		Format:  format,
		Output:  packageOut,
	}, newLogReporter("package"))
	if err != nil {
		logrus.Fatalf(i18n.I18nMsg.Common.ErrorUnexpected, err)
	}
	fmt.Printf(i18n.I18nMsg.Project.Packaged+"\n", res.Archive, float64(res.Size)/1024/1024)
}

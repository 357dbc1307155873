package main

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xishang0128/ini-translate-go/common/file"
	"github.com/xishang0128/ini-translate-go/common/i18n"
)

var (
	rootCmd   *cobra.Command
	userAgent string
	language  string
	timeout   time.Duration
	verbose   bool
)

func init() {
	i18n.InitLanguage()
	// Help text is built below, so --lang has to be applied before cobra parses flags.
	if lang, err := i18n.ParseLanguage(langFromArgs(os.Args[1:])); err == nil {
		i18n.SetLanguage(lang)
	}

	rootCmd = &cobra.Command{
		Use:           "ini-translate",
		Short:         i18n.I18nMsg.App.AppDescription,
		Long:          i18n.I18nMsg.App.AppLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if language != "" {
				if _, err := i18n.ParseLanguage(language); err != nil {
					return err
				}
			}
			setupLogging(verbose)
			if userAgent != "" {
				file.SetUserAgent(userAgent)
			}
			file.SetHTTPClientTimeout(timeout)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&language, "lang", "", i18n.I18nMsg.Common.FlagLang)
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", i18n.I18nMsg.Common.FlagUserAgent)
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 60*time.Second, i18n.I18nMsg.Common.FlagTimeout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, i18n.I18nMsg.Common.FlagVerbose)

	initSplitCmd()
	initDiffCmd()
	initTranslateCmd()
	initInitCmd()
	initCleanCmd()
	initPackageCmd()
	initSelfTestCmd()
	initVersionCmd()
}

// langFromArgs returns the value of --lang in args, if any.
func langFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--lang="); ok {
			return v
		}
		if arg == "--lang" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func setupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf(i18n.I18nMsg.Common.ErrorUnexpected, err)
		os.Exit(1)
	}
}

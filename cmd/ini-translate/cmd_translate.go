package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/translator"
)

var (
	translateInput      string
	translateExport     string
	translateBackup     string
	translateDictionary string
	translateWorkers    int
)

func initTranslateCmd() {
	translateCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Translate.Use,
		Short: i18n.I18nMsg.Translate.Short,
		Long:  i18n.I18nMsg.Translate.Long,
		Args:  cobra.NoArgs,
		Run:   runTranslate,
	}

	def := translator.DefaultOptions()
	translateCmd.Flags().StringVarP(&translateInput, "input", "i", def.InputDir, i18n.I18nMsg.Translate.FlagInput)
	translateCmd.Flags().StringVarP(&translateExport, "output", "o", def.ExportDir, i18n.I18nMsg.Translate.FlagExport)
	translateCmd.Flags().StringVarP(&translateBackup, "backup", "b", def.BackupDir, i18n.I18nMsg.Translate.FlagBackup)
	translateCmd.Flags().StringVarP(&translateDictionary, "translations", "t", def.DictionaryPath, i18n.I18nMsg.Translate.FlagDictionary)
	translateCmd.Flags().IntVarP(&translateWorkers, "workers", "w", runtime.NumCPU(), i18n.I18nMsg.Translate.FlagWorkers)

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := translator.Options{
		InputDir:       translateInput,
		ExportDir:      translateExport,
		BackupDir:      translateBackup,
		DictionaryPath: translateDictionary,
		Workers:        translateWorkers,
	}

	progress := mpb.New(mpb.WithWidth(60))
	var (
		bar          *mpb.Bar
		barOnce      sync.Once
		replacements atomic.Int64
	)
	progressCallback := func(pi translator.ProgressInfo) {
		barOnce.Do(func() {
			bar = progress.AddBar(int64(pi.Total),
				mpb.PrependDecorators(
					decor.Name(i18n.I18nMsg.Translate.Use, decor.WCSyncSpaceR),
					decor.Counters(0, "%d/%d", decor.WCSyncSpace),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
					decor.Any(func(decor.Statistics) string {
						return fmt.Sprintf(" | %d %s", replacements.Load(), i18n.I18nMsg.Translate.ReplacementsUnit)
					}),
				),
			)
		})
		replacements.Add(int64(pi.Result.Replacements))
		bar.Increment()
	}

	summary, err := translator.Run(ctx, opts, newLogReporter("translate"), progressCallback)
	progress.Wait()
	if err != nil {
		logrus.Fatalf(i18n.I18nMsg.Common.ErrorUnexpected, err)
	}

	for _, f := range summary.Files {
		switch {
		case f.Err != nil:
			logrus.Errorf(i18n.I18nMsg.Translate.FileFailed, f.File, f.Err)
		case f.Warning != nil:
			logrus.Warnf(i18n.I18nMsg.Translate.FileWarning, f.File, f.Warning)
		}
		if verbose {
			for _, c := range f.Changes {
				logrus.Infof(i18n.I18nMsg.Translate.FileChange, f.File, c.Original, c.Translated, c.Count)
			}
		}
	}

	fmt.Println()
	fmt.Println(i18n.I18nMsg.Translate.Statistics)
	fmt.Printf(i18n.I18nMsg.Translate.StatSucceeded+"\n", summary.Succeeded)
	fmt.Printf(i18n.I18nMsg.Translate.StatFailed+"\n", summary.Failed)
	fmt.Printf(i18n.I18nMsg.Translate.StatReplacements+"\n", summary.Replacements)
	fmt.Printf(i18n.I18nMsg.Translate.StatElapsed+"\n", summary.Elapsed)
	fmt.Println(i18n.I18nMsg.Translate.Completed)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

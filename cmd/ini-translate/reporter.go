package main

import (
	"github.com/sirupsen/logrus"

	"github.com/xishang0128/ini-translate-go/common/i18n"
	"github.com/xishang0128/ini-translate-go/inidiff"
	"github.com/xishang0128/ini-translate-go/project"
	"github.com/xishang0128/ini-translate-go/splitter"
	"github.com/xishang0128/ini-translate-go/translator"
)

// logReporter renders core package events through logrus with localized
// messages. Per-line events are logged at debug level.
type logReporter struct {
	log *logrus.Entry
}

func newLogReporter(component string) *logReporter {
	return &logReporter{log: logrus.WithField("cmd", component)}
}

var (
	_ splitter.Reporter   = (*logReporter)(nil)
	_ inidiff.Reporter    = (*logReporter)(nil)
	_ translator.Reporter = (*logReporter)(nil)
	_ project.Reporter    = (*logReporter)(nil)
)

func bucketName(b splitter.Bucket) string {
	if b == splitter.Odd {
		return i18n.I18nMsg.Split.BucketOdd
	}
	return i18n.I18nMsg.Split.BucketEven
}

// splitter.Reporter

func (r *logReporter) Attempt(encoding string) {
	r.log.Infof(i18n.I18nMsg.Split.TryingEncoding, encoding)
}

func (r *logReporter) AttemptFailed(encoding string, err error) {
	r.log.Warnf(i18n.I18nMsg.Split.EncodingFailed, encoding, err)
}

func (r *logReporter) LineSkipped(line int) {
	r.log.Debugf(i18n.I18nMsg.Split.LineSkipped, line)
}

func (r *logReporter) LineAssigned(line int, bucket splitter.Bucket, preview string) {
	r.log.Debugf(i18n.I18nMsg.Split.LineAssigned, line, bucketName(bucket), preview)
}

func (r *logReporter) ReadFinished(total, nonBlank int) {
	r.log.Infof(i18n.I18nMsg.Split.ReadFinished, total, nonBlank)
}

func (r *logReporter) BucketCounts(odd, even int) {
	r.log.Infof(i18n.I18nMsg.Split.BucketCounts, odd, even)
}

func (r *logReporter) Written(bucket splitter.Bucket, path string) {
	r.log.Infof(i18n.I18nMsg.Split.Written, bucketName(bucket), path)
}

func (r *logReporter) Warn(w splitter.Warning) {
	switch w {
	case splitter.WarnNothingProcessed:
		r.log.Warn(i18n.I18nMsg.Split.WarnNothing)
	case splitter.WarnOddEmpty:
		r.log.Warn(i18n.I18nMsg.Split.WarnOddEmpty)
	case splitter.WarnEvenEmpty:
		r.log.Warn(i18n.I18nMsg.Split.WarnEvenEmpty)
	}
}

func (r *logReporter) Succeeded() {
	r.log.Info(i18n.I18nMsg.Split.Succeeded)
}

// inidiff.Reporter

func (r *logReporter) MissingSection(section string) {
	r.log.Warnf(i18n.I18nMsg.Diff.MissingSection, section)
}

func (r *logReporter) MissingKey(key, section string) {
	r.log.Warnf(i18n.I18nMsg.Diff.MissingKey, key, section)
}

// translator.Reporter

func (r *logReporter) DictionaryLoaded(entries int) {
	r.log.Infof(i18n.I18nMsg.Translate.DictionaryLoaded, entries)
}

func (r *logReporter) BackupCreated(dir string, cleared bool, files int) {
	if cleared {
		r.log.Infof(i18n.I18nMsg.Translate.BackupCleared, dir)
	}
	r.log.Infof(i18n.I18nMsg.Translate.BackupCreated, files, dir)
}

func (r *logReporter) FilesFound(files []string) {
	r.log.Infof(i18n.I18nMsg.Translate.FilesFound, len(files))
	for _, f := range files {
		r.log.Debug(f)
	}
}

// project.Reporter

func (r *logReporter) Created(path string) {
	r.log.Infof(i18n.I18nMsg.Project.Created, path)
}

func (r *logReporter) Exists(path string) {
	r.log.Infof(i18n.I18nMsg.Project.Exists, path)
}

func (r *logReporter) Copied(path string, files int) {
	r.log.Infof(i18n.I18nMsg.Project.Copied, path, files)
}

func (r *logReporter) Removed(path string) {
	r.log.Infof(i18n.I18nMsg.Project.Removed, path)
}

func (r *logReporter) Missing(path string) {
	r.log.Infof(i18n.I18nMsg.Project.Missing, path)
}

func (r *logReporter) RemoveFailed(path string, err error) {
	r.log.Errorf(i18n.I18nMsg.Project.RemoveFailed, path, err)
}

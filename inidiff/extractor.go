package inidiff

import "strconv"

// Reporter is told about original entries that have no counterpart in the
// translation.
type Reporter interface {
	MissingSection(section string)
	MissingKey(key, section string)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) MissingSection(string) {}
func (NopReporter) MissingKey(string, string) {}

// ExtractDifferences parses both files and compares them with Extract.
// Parse errors are returned unchanged.
func ExtractDifferences(originalPath, translatedPath string, rep Reporter) (*Report, error) {
	orig, err := Parse(originalPath)
	if err != nil {
		return nil, err
	}
	trans, err := Parse(translatedPath)
	if err != nil {
		return nil, err
	}
	return Extract(orig, trans, rep), nil
}

// Extract walks orig in file order and records every key whose translated
// value differs, labelled "<origLine>-<transLine>". Sections or keys missing
// from trans are reported and skipped; entries only present in trans are
// never visited.
func Extract(orig, trans *ConfigMap, rep Reporter) *Report {
	if rep == nil {
		rep = NopReporter{}
	}

	report := NewReport()
	for sec := orig.sections.Oldest(); sec != nil; sec = sec.Next() {
		transSection, ok := trans.sections.Get(sec.Key)
		if !ok {
			rep.MissingSection(sec.Key)
			continue
		}

		for kv := sec.Value.Oldest(); kv != nil; kv = kv.Next() {
			transSetting, ok := transSection.Get(kv.Key)
			if !ok {
				rep.MissingKey(kv.Key, sec.Key)
				continue
			}
			if kv.Value.Value == transSetting.Value {
				continue
			}

			label := strconv.Itoa(kv.Value.Line) + "-" + strconv.Itoa(transSetting.Line)
			report.Add(label, Pair{
				Key: kv.Key,
				En:  kv.Value.Value,
				Zh:  transSetting.Value,
			})
		}
	}
	return report
}

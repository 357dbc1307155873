package inidiff

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pair is one translated key: the original and the translated value.
type Pair struct {
	Key string `json:"key"`
	En  string `json:"en"`
	Zh  string `json:"zh"`
}

// Record is a report entry with its "<origLine>-<transLine>" label.
type Record struct {
	Label string
	Pair
}

// Report maps line-range labels to translation pairs in insertion order.
// Adding an existing label replaces its pair but keeps its position.
type Report struct {
	entries *orderedmap.OrderedMap[string, Pair]
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{entries: orderedmap.New[string, Pair]()}
}

// Add stores p under label.
func (r *Report) Add(label string, p Pair) {
	r.entries.Set(label, p)
}

// Get returns the pair stored under label.
func (r *Report) Get(label string) (Pair, bool) {
	return r.entries.Get(label)
}

// Len returns the number of entries.
func (r *Report) Len() int {
	return r.entries.Len()
}

// Records returns every entry in report order.
func (r *Report) Records() []Record {
	return r.Preview(r.entries.Len())
}

// Preview returns at most the first n entries.
func (r *Report) Preview(n int) []Record {
	n = max(n, 0)
	out := make([]Record, 0, min(n, r.entries.Len()))
	for pair := r.entries.Oldest(); pair != nil && len(out) < n; pair = pair.Next() {
		out = append(out, Record{Label: pair.Key, Pair: pair.Value})
	}
	return out
}

// MarshalJSON encodes the report as {"label": {"key", "en", "zh"}} in order.
func (r *Report) MarshalJSON() ([]byte, error) {
	return r.entries.MarshalJSON()
}

// Dictionary returns the report as an ordered en → zh mapping. When the same
// original text is translated twice, the later translation wins.
func (r *Report) Dictionary() *orderedmap.OrderedMap[string, string] {
	dict := orderedmap.New[string, string]()
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		dict.Set(pair.Value.En, pair.Value.Zh)
	}
	return dict
}

// WriteReport writes one "<label>：<key> = <en>, <zh>" line per entry.
func WriteReport(report *Report, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for pair := report.entries.Oldest(); pair != nil; pair = pair.Next() {
		if _, err := fmt.Fprintf(bw, "%s：%s = %s, %s\n", pair.Key, pair.Value.Key, pair.Value.En, pair.Value.Zh); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveReport writes the report to path as UTF-8, replacing any existing file.
func SaveReport(report *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteReport(report, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveJSON writes the report as indented JSON.
func SaveJSON(report *Report, path string) error {
	return writeIndentedJSON(report, path)
}

// SaveDictionary writes the report's en → zh dictionary as indented JSON,
// in the format the translate command loads.
func SaveDictionary(report *Report, path string) error {
	return writeIndentedJSON(report.Dictionary(), path)
}

func writeIndentedJSON(v json.Marshaler, path string) error {
	raw, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return os.WriteFile(path, buf.Bytes(), 0644)
}

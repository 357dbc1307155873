// Package translator applies an English → Chinese dictionary to a directory
// of INI files, keeping a backup of the inputs.
package translator

import (
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/xishang0128/ini-translate-go/common/file"
)

// Dictionary is an ordered set of literal replacements.
type Dictionary struct {
	entries *orderedmap.OrderedMap[string, string]
}

// Change records how often one dictionary entry was replaced in a file.
type Change struct {
	Original   string
	Translated string
	Count      int
}

// NewDictionary wraps an ordered mapping of source text to translation.
func NewDictionary(entries *orderedmap.OrderedMap[string, string]) *Dictionary {
	if entries == nil {
		entries = orderedmap.New[string, string]()
	}
	return &Dictionary{entries: entries}
}

// LoadDictionary reads a JSON object of "english": "chinese" pairs. The order
// of the object is kept and decides the order replacements are applied in.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := file.ReadAll(path)
	if err != nil {
		return nil, err
	}
	entries := orderedmap.New[string, string]()
	if err := json.Unmarshal(data, entries); err != nil {
		return nil, fmt.Errorf("decode dictionary %s: %w", path, err)
	}
	return NewDictionary(entries), nil
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return d.entries.Len()
}

// Apply replaces every occurrence of each entry, in dictionary order, and
// returns the result with the entries that matched. Later entries see the
// output of earlier ones. Empty source strings never match.
func (d *Dictionary) Apply(content string) (string, []Change) {
	var changes []Change
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "" {
			continue
		}
		n := strings.Count(content, pair.Key)
		if n == 0 {
			continue
		}
		content = strings.ReplaceAll(content, pair.Key, pair.Value)
		changes = append(changes, Change{Original: pair.Key, Translated: pair.Value, Count: n})
	}
	return content, changes
}

package inidiff

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Setting is the value of a key together with the 1-based line it was read from.
type Setting struct {
	Value string
	Line  int
}

type section = orderedmap.OrderedMap[string, Setting]

// ConfigMap holds the sections of one INI file and their keys, both in the
// order they first appeared.
type ConfigMap struct {
	sections *orderedmap.OrderedMap[string, *section]
}

// NewConfigMap returns an empty ConfigMap.
func NewConfigMap() *ConfigMap {
	return &ConfigMap{sections: orderedmap.New[string, *section]()}
}

// openSection starts name with no keys. A section that already exists keeps
// its position but loses every key read so far.
func (c *ConfigMap) openSection(name string) {
	c.sections.Set(name, orderedmap.New[string, Setting]())
}

func (c *ConfigMap) set(sectionName, key string, s Setting) {
	sec, ok := c.sections.Get(sectionName)
	if !ok {
		sec = orderedmap.New[string, Setting]()
		c.sections.Set(sectionName, sec)
	}
	sec.Set(key, s)
}

// Len returns the number of sections.
func (c *ConfigMap) Len() int {
	return c.sections.Len()
}

// Sections returns the section names in file order.
func (c *ConfigMap) Sections() []string {
	names := make([]string, 0, c.sections.Len())
	for pair := c.sections.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// HasSection reports whether name was declared.
func (c *ConfigMap) HasSection(name string) bool {
	_, ok := c.sections.Get(name)
	return ok
}

// Keys returns the keys of a section in file order, or nil if it does not exist.
func (c *ConfigMap) Keys(sectionName string) []string {
	sec, ok := c.sections.Get(sectionName)
	if !ok {
		return nil
	}
	keys := make([]string, 0, sec.Len())
	for pair := sec.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Lookup returns the setting stored for key in sectionName.
func (c *ConfigMap) Lookup(sectionName, key string) (Setting, bool) {
	sec, ok := c.sections.Get(sectionName)
	if !ok {
		return Setting{}, false
	}
	return sec.Get(key)
}

// KeyCount returns the total number of keys over all sections.
func (c *ConfigMap) KeyCount() int {
	n := 0
	for pair := c.sections.Oldest(); pair != nil; pair = pair.Next() {
		n += pair.Value.Len()
	}
	return n
}

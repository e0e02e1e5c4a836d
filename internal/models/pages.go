package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrPagesNotObject = errors.New("pages must be a JSON object")

// Pages maps page keys to ordered section lists. Key order is insertion order
// and survives a JSON round trip, since "the first page" is meaningful.
type Pages struct {
	keys  []string
	lists map[string][]SectionID
}

func NewPages() Pages {
	return Pages{keys: []string{}, lists: map[string][]SectionID{}}
}

// PagesOf builds Pages from entries, keeping their order.
func PagesOf(entries ...PageEntry) Pages {
	pages := NewPages()
	for _, entry := range entries {
		pages.Set(entry.Key, entry.Sections)
	}
	return pages
}

type PageEntry struct {
	Key      string
	Sections []SectionID
}

func (p Pages) Len() int {
	return len(p.keys)
}

func (p Pages) Keys() []string {
	return append([]string{}, p.keys...)
}

func (p Pages) Has(key string) bool {
	_, ok := p.lists[key]
	return ok
}

func (p Pages) Get(key string) ([]SectionID, bool) {
	sections, ok := p.lists[key]
	return sections, ok
}

// First returns the first page key in order.
func (p Pages) First() (string, bool) {
	if len(p.keys) == 0 {
		return "", false
	}
	return p.keys[0], true
}

// Set replaces a page's sections. New keys are appended; existing keys keep
// their position. A nil list is stored as empty.
func (p *Pages) Set(key string, sections []SectionID) {
	if p.lists == nil {
		p.lists = map[string][]SectionID{}
		p.keys = []string{}
	}
	if sections == nil {
		sections = []SectionID{}
	}
	if _, ok := p.lists[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.lists[key] = sections
}

func (p *Pages) Delete(key string) bool {
	if _, ok := p.lists[key]; !ok {
		return false
	}
	delete(p.lists, key)
	for i, existing := range p.keys {
		if existing == key {
			p.keys = append(p.keys[:i:i], p.keys[i+1:]...)
			break
		}
	}
	return true
}

func (p Pages) Clone() Pages {
	if p.lists == nil {
		return Pages{}
	}
	out := NewPages()
	for _, key := range p.keys {
		out.Set(key, append([]SectionID{}, p.lists[key]...))
	}
	return out
}

func (p Pages) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		sections := p.lists[key]
		if sections == nil {
			sections = []SectionID{}
		}
		encodedList, err := json.Marshal(sections)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedList)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts any JSON object. Values that are not arrays become
// empty pages and array members that are not strings are dropped.
func (p *Pages) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode pages: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrPagesNotObject
	}

	out := NewPages()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode pages: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return ErrPagesNotObject
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode page %q: %w", key, err)
		}
		out.Set(key, decodeSectionList(raw))
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode pages: %w", err)
	}

	*p = out
	return nil
}

func decodeSectionList(raw json.RawMessage) []SectionID {
	var values []any
	if err := json.Unmarshal(raw, &values); err != nil || values == nil {
		return []SectionID{}
	}
	sections := make([]SectionID, 0, len(values))
	for _, value := range values {
		if id, ok := value.(string); ok {
			sections = append(sections, SectionID(id))
		}
	}
	return sections
}

// FormatPageKey turns a page key into a display label: "about-us" becomes
// "About Us".
func FormatPageKey(key string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(key)
	words := strings.Fields(replaced)
	if len(words) == 0 {
		return key
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}

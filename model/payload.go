package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	keyMetadata        = "metadata"
	keyCorrections     = "corrections"
	keyLanguage        = "language"
	keyChaptersCovered = "chapters_covered"
)

// Payload represents a reviewer corrections bundle. Correction records are
// opaque; the submitter never looks inside them.
type Payload struct {
	Metadata    Metadata          `json:"metadata"`
	Corrections []json.RawMessage `json:"corrections"`

	// Extra holds top level keys other than metadata and corrections.
	Extra map[string]json.RawMessage `json:"-"`

	layout layout
}

// Metadata describes the language and chapters a payload covers.
type Metadata struct {
	Language        string                     `json:"language"`
	ChaptersCovered []json.RawMessage          `json:"chapters_covered"`
	Extra           map[string]json.RawMessage `json:"-"`

	layout layout
}

// Language returns the payload language identifier.
func (p *Payload) Language() string {
	if p == nil {
		return ""
	}
	return p.Metadata.Language
}

// ItemCount returns the number of correction records.
func (p *Payload) ItemCount() int {
	if p == nil {
		return 0
	}
	return len(p.Corrections)
}

// ChapterCount returns the number of chapters covered.
func (p *Payload) ChapterCount() int {
	if p == nil {
		return 0
	}
	return len(p.Metadata.ChaptersCovered)
}

// DecodePayload parses a JSON corrections payload.
func DecodePayload(data []byte) (*Payload, error) {
	ret := &Payload{}
	if err := json.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode corrections payload: %w", err)
	}
	return ret, nil
}

// UnmarshalJSON keeps unknown keys so that an export reproduces the input.
func (p *Payload) UnmarshalJSON(data []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*p = Payload{}
	aLayout := layout{}
	if raw, ok := aLayout.take(fields, keyMetadata); ok {
		if err := json.Unmarshal(raw, &p.Metadata); err != nil {
			return fmt.Errorf("invalid %s: %w", keyMetadata, err)
		}
	}
	if raw, ok := aLayout.take(fields, keyCorrections); ok {
		if err := json.Unmarshal(raw, &p.Corrections); err != nil {
			return fmt.Errorf("invalid %s: %w", keyCorrections, err)
		}
	}
	if len(aLayout) > 0 {
		p.layout = aLayout
	}
	if len(fields) > 0 {
		p.Extra = fields
	}
	return nil
}

// MarshalJSON writes metadata and corrections followed by any extra keys.
// Keys that were absent or null when decoded stay so while still empty.
func (p Payload) MarshalJSON() ([]byte, error) {
	fields := make(map[string]interface{}, len(p.Extra)+2)
	for k, v := range p.Extra {
		fields[k] = v
	}
	p.layout.put(fields, keyMetadata, p.Metadata, p.Metadata.isEmpty())
	corrections := p.Corrections
	if corrections == nil {
		corrections = []json.RawMessage{}
	}
	p.layout.put(fields, keyCorrections, corrections, p.Corrections == nil)
	return json.Marshal(fields)
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*m = Metadata{}
	aLayout := layout{}
	if raw, ok := aLayout.take(fields, keyLanguage); ok {
		if err := json.Unmarshal(raw, &m.Language); err != nil {
			return fmt.Errorf("invalid %s: %w", keyLanguage, err)
		}
	}
	if raw, ok := aLayout.take(fields, keyChaptersCovered); ok {
		if err := json.Unmarshal(raw, &m.ChaptersCovered); err != nil {
			return fmt.Errorf("invalid %s: %w", keyChaptersCovered, err)
		}
	}
	if len(aLayout) > 0 {
		m.layout = aLayout
	}
	if len(fields) > 0 {
		m.Extra = fields
	}
	return nil
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	fields := make(map[string]interface{}, len(m.Extra)+2)
	for k, v := range m.Extra {
		fields[k] = v
	}
	m.layout.put(fields, keyLanguage, m.Language, m.Language == "")
	chapters := m.ChaptersCovered
	if chapters == nil {
		chapters = []json.RawMessage{}
	}
	m.layout.put(fields, keyChaptersCovered, chapters, m.ChaptersCovered == nil)
	return json.Marshal(fields)
}

func (m *Metadata) isEmpty() bool {
	return m.Language == "" && m.ChaptersCovered == nil && len(m.Extra) == 0
}

type keyState uint8

const (
	keyPresent keyState = iota
	keyAbsent
	keyNull
)

// layout records the known keys that were absent or null in a decoded document.
type layout map[string]keyState

// take removes key from fields and returns its value unless it is absent or null.
func (l layout) take(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok {
		l[key] = keyAbsent
		return nil, false
	}
	delete(fields, key)
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		l[key] = keyNull
		return nil, false
	}
	return raw, true
}

func (l layout) put(fields map[string]interface{}, key string, value interface{}, empty bool) {
	if empty {
		switch l[key] {
		case keyAbsent:
			return
		case keyNull:
			fields[key] = nil
			return
		}
	}
	fields[key] = value
}

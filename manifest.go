package setsync

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Section is a named partition of settings data.
// Its timestamp is the last-modified time of the section's _content_,
// in milliseconds since the Unix epoch,
// not the time the containing manifest was written.
// The content itself is opaque to this package:
// it is loaded and saved as a unit through the adapters.
type Section struct {
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

// Manifest describes one copy of a settings store:
// the sections it holds and the version metadata gating synchronization.
//
// MinCompatibleVersion is the oldest protocol version the manifest's
// writer guarantees to understand;
// it gates whether another instance may read this copy.
// ProtocolVersion is the version of the write-capable sync format;
// it gates whether another instance may write this copy.
//
// The JSON field names are the wire contract shared with existing
// remote stores and must not change.
type Manifest struct {
	MinCompatibleVersion int       `json:"min-compatible-version"`
	ProtocolVersion      int       `json:"protocol-version"`
	Timestamp            int64     `json:"timestamp"`
	AppID                string    `json:"app-id"`
	Sections             []Section `json:"sections"`
}

// Valid tells whether m has all three required scalar fields present and
// non-zero.
// A manifest freshly decoded from an untrusted source must pass Valid
// before its sections are trusted.
func (m *Manifest) Valid() bool {
	if m == nil {
		return false
	}
	return m.MinCompatibleVersion != 0 && m.ProtocolVersion != 0 && m.Timestamp != 0
}

// Section finds the section with the given name,
// returning a pointer into m.Sections so the caller can update its
// timestamp in place.
// It returns nil if m has no section with that name.
func (m *Manifest) Section(name string) *Section {
	for i := range m.Sections {
		if m.Sections[i].Name == name {
			return &m.Sections[i]
		}
	}
	return nil
}

// ParseManifest decodes a manifest from its JSON wire form.
func ParseManifest(b []byte) (*Manifest, error) {
	var m Manifest
	err := json.Unmarshal(b, &m)
	return &m, errors.Wrap(err, "decoding manifest")
}

// Encode produces m's JSON wire form.
func (m *Manifest) Encode() ([]byte, error) {
	b, err := json.Marshal(m)
	return b, errors.Wrap(err, "encoding manifest")
}

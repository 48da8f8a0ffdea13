package setsync

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The JSON field names are the wire contract shared with existing
// remote stores. This test pins them.
func TestManifestWireNames(t *testing.T) {
	m := &Manifest{
		MinCompatibleVersion: 1,
		ProtocolVersion:      2,
		Timestamp:            1234,
		AppID:                "app-1",
		Sections:             []Section{{Name: "general", Timestamp: 50}},
	}

	b, err := m.Encode()
	if err != nil {
		t.Fatal(err)
	}

	const want = `{"min-compatible-version":1,"protocol-version":2,"timestamp":1234,"app-id":"app-1","sections":[{"name":"general","timestamp":50}]}`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}

	got, err := ParseManifest(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestManifestValid(t *testing.T) {
	cases := []struct {
		name string
		m    *Manifest
		want bool
	}{
		{name: "complete", m: &Manifest{MinCompatibleVersion: 1, ProtocolVersion: 1, Timestamp: 1}, want: true},
		{name: "nil", m: nil, want: false},
		{name: "zero min-compatible-version", m: &Manifest{ProtocolVersion: 1, Timestamp: 1}, want: false},
		{name: "zero protocol-version", m: &Manifest{MinCompatibleVersion: 1, Timestamp: 1}, want: false},
		{name: "zero timestamp", m: &Manifest{MinCompatibleVersion: 1, ProtocolVersion: 1}, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.m.Valid(); got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestManifestSection(t *testing.T) {
	m := &Manifest{Sections: []Section{{Name: "a", Timestamp: 1}, {Name: "b", Timestamp: 2}}}

	s := m.Section("b")
	if s == nil {
		t.Fatal("got nil, want section b")
	}

	// The returned pointer aliases the manifest's own slice.
	s.Timestamp = 99
	if m.Sections[1].Timestamp != 99 {
		t.Errorf("got %d, want 99", m.Sections[1].Timestamp)
	}

	if m.Section("missing") != nil {
		t.Error("got a section for a missing name, want nil")
	}
}

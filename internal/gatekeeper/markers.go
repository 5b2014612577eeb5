package gatekeeper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkerSet is a list of lower-cased substrings matched against the combined
// narrative. Marker lists are content policy, not algorithm: they ship as
// JSON files and can be replaced without touching the engine.
type MarkerSet struct {
	markers []string
}

// LoadMarkers reads a JSON array of marker strings from the provided file.
func LoadMarkers(path string) (MarkerSet, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return MarkerSet{}, fmt.Errorf("read markers: %w", err)
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return MarkerSet{}, fmt.Errorf("unmarshal markers: %w", err)
	}
	return NewMarkerSet(raw), nil
}

// NewMarkerSet builds a marker set from the given terms, dropping blanks and
// lower-casing the rest.
func NewMarkerSet(terms []string) MarkerSet {
	var out []string
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			out = append(out, term)
		}
	}
	return MarkerSet{markers: out}
}

// Match returns the first marker contained in the haystack, which must be
// lower-cased by the caller.
func (m MarkerSet) Match(haystack string) (string, bool) {
	for _, marker := range m.markers {
		if strings.Contains(haystack, marker) {
			return marker, true
		}
	}
	return "", false
}

// Len reports how many markers are configured.
func (m MarkerSet) Len() int {
	return len(m.markers)
}

// Default marker lists. Russian stems are kept deliberately short so that
// inflected forms still match ("гарантирован" covers "гарантированно").
func defaultRealityMarkers() MarkerSet {
	return NewMarkerSet([]string{
		"на луну", "марс", "телепортац", "вечный двигатель",
		"100% без риска", "гарантирован",
		"to the moon", "mars", "teleportation", "perpetual motion",
		"100% risk-free", "guaranteed",
	})
}

func defaultLegalityMarkers() MarkerSet {
	return NewMarkerSet([]string{
		"обойти закон", "без документов", "нелегально", "серые схемы",
		"отмыв", "контрабанд", "взлом",
		"bypass the law", "without documentation", "illegal",
		"under the table", "money laundering", "smuggling", "hacking",
	})
}

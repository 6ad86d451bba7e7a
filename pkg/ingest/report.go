package ingest

import (
	"fmt"
	"strings"
)

// Report summarizes one ingestion run.
type Report struct {
	Sources []*SourceReport `json:"sources" yaml:"sources"`
}

// SourceReport summarizes the ingestion of a single source.
type SourceReport struct {
	Source   SourceID `json:"source" yaml:"source"`
	Path     string   `json:"path" yaml:"path"`
	Lines    int      `json:"lines" yaml:"lines"`       // Lines read
	Accepted int      `json:"accepted" yaml:"accepted"` // Records applied to the catalog
	Rejected int      `json:"rejected" yaml:"rejected"` // Records dropped as malformed or duplicate
	Skipped  bool     `json:"skipped" yaml:"skipped"`   // Source could not be read
	Err      error    `json:"-" yaml:"-"`               // Why the source was skipped
	Cause    string   `json:"cause,omitempty" yaml:"cause,omitempty"`
}

// Source returns the report for id, or nil.
func (r *Report) Source(id SourceID) *SourceReport {
	for _, s := range r.Sources {
		if s.Source == id {
			return s
		}
	}
	return nil
}

// Accepted returns the number of accepted records across all sources.
func (r *Report) Accepted() int {
	n := 0
	for _, s := range r.Sources {
		n += s.Accepted
	}
	return n
}

// Skipped returns the ids of the sources that could not be read.
func (r *Report) Skipped() []SourceID {
	var ids []SourceID
	for _, s := range r.Sources {
		if s.Skipped {
			ids = append(ids, s.Source)
		}
	}
	return ids
}

// Summary returns a human-readable summary of the run.
func (r *Report) Summary() string {
	parts := make([]string, 0, len(r.Sources))
	for _, s := range r.Sources {
		parts = append(parts, s.Summary())
	}
	return strings.Join(parts, "; ")
}

// Summary returns a human-readable summary of the source.
func (s *SourceReport) Summary() string {
	if s.Skipped {
		return fmt.Sprintf("%s: skipped (%s)", s.Source, s.Cause)
	}
	return fmt.Sprintf("%s: %d accepted, %d rejected of %d lines", s.Source, s.Accepted, s.Rejected, s.Lines)
}

package output

import (
	"io"
	"strconv"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/ingest"
)

// Summary is the stats command payload for JSON and YAML output.
type Summary struct {
	Catalog catalogs.Stats         `json:"catalog" yaml:"catalog"`
	Sources []*ingest.SourceReport `json:"sources" yaml:"sources"`
}

// NewSummary combines catalog counts with an ingestion report.
// A nil report yields no source rows.
func NewSummary(stats catalogs.Stats, report *ingest.Report) Summary {
	s := Summary{Catalog: stats}
	if report != nil {
		s.Sources = report.Sources
	}
	return s
}

// TableData renders the summary as one row per source followed by totals.
func (s Summary) TableData() Data {
	rows := make([][]string, 0, len(s.Sources)+5)
	for _, src := range s.Sources {
		status := "ok"
		if src.Skipped {
			status = "skipped: " + src.Cause
		}
		rows = append(rows, []string{
			src.Source.String(),
			src.Path,
			strconv.Itoa(src.Lines),
			strconv.Itoa(src.Accepted),
			strconv.Itoa(src.Rejected),
			status,
		})
	}

	totals := []struct {
		name  string
		count int
	}{
		{"movies", s.Catalog.Movies},
		{"actors", s.Catalog.Actors},
		{"genres", s.Catalog.Genres},
		{"cast entries", s.Catalog.CastEntries},
		{"genre tags", s.Catalog.GenreTags},
	}
	for _, t := range totals {
		rows = append(rows, []string{"total", t.name, "", strconv.Itoa(t.count), "", ""})
	}

	return Data{
		Headers: []string{"Source", "Path", "Lines", "Accepted", "Rejected", "Status"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft,
		},
	}
}

// Write renders the summary to w in the given format.
func (s Summary) Write(w io.Writer, format Format) error {
	var data any = s
	if format != FormatJSON && format != FormatYAML {
		data = s.TableData()
	}
	return NewFormatter(format).Format(w, data)
}

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/ingest"
)

func testSummary() Summary {
	report := &ingest.Report{Sources: []*ingest.SourceReport{
		{Source: ingest.MoviesID, Path: "deisi_movies.txt", Lines: 3, Accepted: 2, Rejected: 1},
		{Source: ingest.ActorsID, Path: "deisi_actors.txt", Skipped: true, Cause: "file does not exist"},
	}}
	return NewSummary(catalogs.Stats{Movies: 2, Actors: 0, Genres: 1, GenreTags: 2}, report)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testSummary().Write(&buf, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	catalog := decoded["catalog"].(map[string]any)
	assert.EqualValues(t, 2, catalog["movies"])
	sources := decoded["sources"].([]any)
	require.Len(t, sources, 2)
	assert.Equal(t, "actors", sources[1].(map[string]any)["source"])
	assert.Equal(t, true, sources[1].(map[string]any)["skipped"])
}

func TestSummaryYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testSummary().Write(&buf, FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "catalog:")
	assert.Contains(t, out, "movies: 2")
	assert.Contains(t, out, "cause: file does not exist")
}

func TestSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testSummary().Write(&buf, FormatTable))

	out := buf.String()
	assert.Contains(t, out, "SOURCE")
	assert.Contains(t, out, "deisi_movies.txt")
	assert.Contains(t, out, "skipped: file does not exist")
	assert.Contains(t, out, "cast entries")
}

func TestTableFromStructs(t *testing.T) {
	type row struct {
		Name      string `json:"name"`
		CastCount int    `json:"cast_count"`
		hidden    string
		Skip      string `json:"-"`
	}

	data := convertToTableData([]row{{Name: "Alpha", CastCount: 2}})
	require.NotNil(t, data)
	assert.Equal(t, []string{"Name", "Cast Count"}, data.Headers)
	assert.Equal(t, [][]string{{"Alpha", "2"}}, data.Rows)

	single := convertToTableData(catalogs.Stats{Movies: 4})
	require.NotNil(t, single)
	assert.Equal(t, []string{"Property", "Value"}, single.Headers)
	assert.Equal(t, []string{"Movies", "4"}, single.Rows[0])

	assert.Nil(t, convertToTableData(42))
}

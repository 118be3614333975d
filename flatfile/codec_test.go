package flatfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apptrack/models"
)

func rec(t *testing.T, company, date string, quantity int) models.Record {
	t.Helper()
	d, err := models.ParseDate(date)
	require.NoError(t, err)
	return models.Record{Company: company, Date: d, Quantity: quantity}
}

func TestParsePreservesOrderAndDuplicates(t *testing.T) {
	text := "Acme,2024-01-01,1\nGlobex,2024-01-03,1\nAcme,2024-01-05,2\n"

	records, err := Parse(strings.NewReader(text))
	require.NoError(t, err)

	want := []models.Record{
		rec(t, "Acme", "2024-01-01", 1),
		rec(t, "Globex", "2024-01-03", 1),
		rec(t, "Acme", "2024-01-05", 2),
	}
	assert.Equal(t, want, records)
}

func TestSerializeThenParseIsIdentity(t *testing.T) {
	records := []models.Record{
		rec(t, "Acme", "2024-01-01", 1),
		rec(t, "Initech, Inc.", "2024-02-10", 3),
		rec(t, "Acme", "2024-01-05", 2),
	}

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, records))

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, parsed)
}

func TestParseThenSerializeIsIdentity(t *testing.T) {
	text := "Acme,2024-01-01,1\nGlobex,2024-01-03,2\n"

	records, err := Parse(strings.NewReader(text))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, records))
	assert.Equal(t, text, buf.String())
}

func TestParseEmptyInput(t *testing.T) {
	records, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseMalformedLineAbortsWholeParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{name: "wrong field count", text: "Acme,2024-01-01\n", line: 1},
		{name: "extra field", text: "Acme,2024-01-01,1,extra\n", line: 1},
		{name: "bad date format", text: "Acme,01/05/2024,1\n", line: 1},
		{name: "non-integer quantity", text: "Acme, 2024-01-05, three\n", line: 1},
		{name: "zero quantity", text: "Acme,2024-01-05,0\n", line: 1},
		{name: "negative quantity", text: "Acme,2024-01-05,-1\n", line: 1},
		{name: "empty company", text: ",2024-01-05,1\n", line: 1},
		{name: "bad line after good ones", text: "Acme,2024-01-01,1\nGlobex,2024-01-03,1\nbroken\n", line: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Parse(strings.NewReader(tt.text))

			assert.Nil(t, records, "no partial record list on failure")
			var malformed *MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.line, malformed.Line)
		})
	}
}

func TestWriteFileRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applications.csv")
	first := []models.Record{rec(t, "Acme", "2024-01-01", 1)}
	require.NoError(t, WriteFile(path, first, false))

	err := WriteFile(path, []models.Record{rec(t, "Globex", "2024-01-03", 2)}, false)
	var overwrite *OverwriteError
	require.ErrorAs(t, err, &overwrite)
	assert.Equal(t, path, overwrite.Path)

	// Refusal must leave the target untouched.
	kept, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, kept)
}

func TestWriteFileForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applications.csv")
	require.NoError(t, WriteFile(path, []models.Record{rec(t, "Acme", "2024-01-01", 1)}, false))

	replacement := []models.Record{rec(t, "Globex", "2024-01-03", 2)}
	require.NoError(t, WriteFile(path, replacement, true))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAppendCreatesAndExtends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applications.csv")

	require.NoError(t, Append(path, rec(t, "Acme", "2024-01-01", 1)))
	require.NoError(t, Append(path, rec(t, "Globex", "2024-01-03", 2)))

	got, err := ReadFile(path)
	require.NoError(t, err)
	want := []models.Record{
		rec(t, "Acme", "2024-01-01", 1),
		rec(t, "Globex", "2024-01-03", 2),
	}
	assert.Equal(t, want, got)
}

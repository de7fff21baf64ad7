package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerscan/powerscan/internal/types"
)

func TestWriteJSON_Roundtrip(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult()
	require.NoError(t, WriteJSON(&buf, res))

	var got types.ScanResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, res.Findings, got.Findings)
	assert.Equal(t, res.Summary.FilesScanned, got.Summary.FilesScanned)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 findings
	assert.Equal(t, "rule_id", records[0][0])
	assert.Equal(t, "eval-usage", records[1][0])
	assert.Equal(t, "2", records[1][2])
	assert.Equal(t, "1", records[1][3])
	assert.Equal(t, "high", records[1][4])
}

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, sampleResult(), "0.1.0"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "2.1.0", doc["version"])

	runs := doc["runs"].([]any)
	require.Len(t, runs, 1)
	results := runs[0].(map[string]any)["results"].([]any)
	require.Len(t, results, 2)
	first := results[0].(map[string]any)
	assert.Equal(t, "eval-usage", first["ruleId"])
	assert.Equal(t, "error", first["level"]) // high maps to error
}

func TestSevToLevel(t *testing.T) {
	assert.Equal(t, "error", sevToLevel(types.SevCritical))
	assert.Equal(t, "error", sevToLevel(types.SevHigh))
	assert.Equal(t, "warning", sevToLevel(types.SevMedium))
	assert.Equal(t, "note", sevToLevel(types.SevLow))
	assert.Equal(t, "note", sevToLevel(types.SevInfo))
}

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentineldata/riskintel/internal/domain/risk"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entity.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestScoreCommand(t *testing.T) {
	path := writeProfile(t, `{
		"entity_id": "ENT-1",
		"events": [
			{"category": "MLA", "sub_category": "CVT", "date": "2024-06-01"}
		],
		"attributes": [{"code_type": "PTY", "value": "HOS:L5"}],
		"addresses": [{"country": "IR"}]
	}`)

	out, err := runCommand(t, "score", path, "--at", "2025-06-01")
	require.NoError(t, err)

	var a risk.RiskAssessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "ENT-1", a.EntityID)
	assert.Greater(t, a.TotalScore, 0.0)
	assert.NotEmpty(t, a.RiskLevel)
	assert.Equal(t, "3.0.0-advanced", a.Metadata.AlgorithmVersion)
}

func TestScoreCommandDeterministicWithAt(t *testing.T) {
	path := writeProfile(t, `{
		"entity_id": "ENT-1",
		"events": [{"category": "FRD", "date": "2020-01-01"}]
	}`)

	first, err := runCommand(t, "score", path, "--at", "2025-01-01")
	require.NoError(t, err)
	second, err := runCommand(t, "score", path, "--at", "2025-01-01")
	require.NoError(t, err)
	assert.JSONEq(t, first, second)
}

func TestScoreCommandMissingEntityID(t *testing.T) {
	path := writeProfile(t, `{"events": []}`)
	_, err := runCommand(t, "score", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entity_id")
}

func TestScoreCommandBadFile(t *testing.T) {
	_, err := runCommand(t, "score", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeProfile(t, `{not json`)
	_, err = runCommand(t, "score", path)
	assert.Error(t, err)
}

func TestScoreCommandBadAtDate(t *testing.T) {
	path := writeProfile(t, `{"entity_id": "ENT-1"}`)
	_, err := runCommand(t, "score", path, "--at", "June 1st")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--at")
}

func TestEntityFileConversionDropsBadDates(t *testing.T) {
	f := &entityFile{ID: "ENT-1"}
	f.Events = append(f.Events, struct {
		Category    string `json:"category"`
		SubCategory string `json:"sub_category"`
		Date        string `json:"date"`
		Description string `json:"description"`
	}{Category: "FRD", Date: "01/02/2020"})

	rec := f.toRecord()
	require.Len(t, rec.Events, 1)
	assert.Nil(t, rec.Events[0].Date)
}

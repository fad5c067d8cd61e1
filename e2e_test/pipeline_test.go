//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/notepipe/cmd"
	"github.com/jsphweid/notepipe/config"
)

func TestGenerateEncodeDecodePipeline(t *testing.T) {
	dir := t.TempDir()
	seqPath := filepath.Join(dir, "midi_sequence.txt")
	midPath := filepath.Join(dir, "out.mid")
	csvPath := filepath.Join(dir, "out.csv")

	assert := assert.New(t)
	assert.NoError(cmd.Generate(seqPath))
	assert.NoError(cmd.Encode(seqPath, midPath))
	assert.NoError(cmd.Decode(midPath, csvPath))

	f, err := os.Open(csvPath)
	assert.NoError(err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	assert.NoError(err)
	assert.Len(records, config.Default().NumNotes)
	for _, record := range records {
		assert.Len(record, 4)
	}
}

package table

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/notepipe/model"
)

func TestNoteName(t *testing.T) {
	cases := map[uint8]string{
		0:   "C-1",
		21:  "A0",
		60:  "C4",
		61:  "C#4",
		69:  "A4",
		127: "G9",
	}
	assert := assert.New(t)
	for key, want := range cases {
		assert.Equal(want, NoteName(key), "key %v", key)
	}
}

func TestWriteCSV(t *testing.T) {
	notes := []model.Note{
		{OnsetSec: 0, DurationSec: 0.5, Key: 60, Velocity: 100},
		{OnsetSec: 0.5, DurationSec: 1.25, Key: 61, Velocity: 80},
	}
	path := filepath.Join(t.TempDir(), "out.csv")

	assert := assert.New(t)
	assert.NoError(WriteCSV(notes, path))

	f, err := os.Open(path)
	assert.NoError(err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	assert.NoError(err)
	assert.Equal([][]string{
		{"0.000", "0.500", "C4", "100"},
		{"0.500", "1.250", "C#4", "80"},
	}, records)
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeRejectsMalformedInputAndLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "seq.txt")
	out := filepath.Join(dir, "out.mid")

	assert := assert.New(t)
	assert.NoError(os.WriteFile(in, []byte("10 2 100\n20 x 100\n"), 0666))

	assert.Error(Encode(in, out))
	assert.NoFileExists(out)
}

func TestEncodeRejectsEmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "seq.txt")
	out := filepath.Join(dir, "out.mid")

	assert := assert.New(t)
	assert.NoError(os.WriteFile(in, []byte("# nothing here\n\n"), 0666))

	assert.Error(Encode(in, out))
	assert.NoFileExists(out)
}

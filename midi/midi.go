package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidiFile parses a Standard MIDI File from disk.
func ReadMidiFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf parser panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, fmt.Errorf("could not read midi file... %v", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("could not parse midi file... %v", err)
	}

	return res, nil
}

// WriteMidiFile serializes s and moves it into place through a uniquely
// named temp file, so a failed run never leaves a partial output file
// at path.
func WriteMidiFile(s *smf.SMF, path string) error {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return fmt.Errorf("could not serialize midi... %v", err)
	}

	tmp := filepath.Join(filepath.Dir(path), uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("could not write midi file... %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not move midi file into place... %v", err)
	}
	return nil
}

package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/jsphweid/notepipe/model"
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName renders a MIDI key number as a name with octave, C4 = 60.
func NoteName(key uint8) string {
	octave := int(key)/12 - 1
	return fmt.Sprintf("%v%v", noteNames[key%12], octave)
}

// WriteCSV emits one "onset_seconds,duration_seconds,note_name,velocity"
// row per note.
func WriteCSV(notes []model.Note, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create table file... %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, n := range notes {
		record := []string{
			strconv.FormatFloat(n.OnsetSec, 'f', 3, 64),
			strconv.FormatFloat(n.DurationSec, 'f', 3, 64),
			NoteName(n.Key),
			strconv.Itoa(int(n.Velocity)),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("could not write table row... %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not write table file... %v", err)
	}
	return nil
}

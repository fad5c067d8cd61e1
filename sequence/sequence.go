package sequence

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/jsphweid/notepipe/config"
	"github.com/jsphweid/notepipe/model"
	"github.com/jsphweid/notepipe/util"
)

// Generate samples cfg.NumNotes independent notes, each with a uniform
// pitch in [1, cfg.MaxPitch] and duration in [1, cfg.MaxDuration].
func Generate(cfg config.Config, rnd *rand.Rand) []model.NoteEvent {
	res := make([]model.NoteEvent, 0, cfg.NumNotes)
	for i := 0; i < cfg.NumNotes; i++ {
		evt := model.NoteEvent{
			Pitch:    uint8(rnd.Intn(int(cfg.MaxPitch)) + 1),
			Duration: rnd.Intn(cfg.MaxDuration) + 1,
		}
		res = append(res, evt)
	}
	return res
}

// TotalSeconds is how long the sequence runs when the notes play back
// to back.
func TotalSeconds(events []model.NoteEvent) uint64 {
	durations := make([]int, 0, len(events))
	for _, evt := range events {
		durations = append(durations, evt.Duration)
	}
	return util.Sum(durations)
}

// WriteFile writes events in the sequential text format, one
// "pitch duration velocity" line per note.
func WriteFile(path string, events []model.NoteEvent, cfg config.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create sequence file... %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, evt := range events {
		fmt.Fprintf(w, "%v %v %v\n", evt.Pitch, evt.Duration, cfg.Velocity)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write sequence file... %v", err)
	}
	return nil
}

package midi

import (
	"fmt"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/notepipe/model"
)

type reducedEvent struct {
	micros    int64
	isNoteOff bool
	key       uint8
	velocity  uint8
}

// Decode walks every track, pairs note starts with their ends and
// returns the notes sorted by onset. A note-on with velocity 0 counts
// as a note-off. Ends with no matching start, and starts that never
// end, are dropped. Meta and channel events other than notes are
// ignored.
func Decode(s *smf.SMF) ([]model.Note, error) {
	if _, ok := s.TimeFormat.(smf.MetricTicks); !ok {
		return nil, fmt.Errorf("unsupported time format: %v", s.TimeFormat)
	}

	var reduced []reducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				reduced = append(reduced, reducedEvent{
					micros:   s.TimeAt(absTicks),
					key:      key,
					velocity: velocity,
				})
			case event.Message.GetNoteEnd(&channel, &key):
				reduced = append(reduced, reducedEvent{
					micros:    s.TimeAt(absTicks),
					isNoteOff: true,
					key:       key,
				})
			}
		}
	}

	// prioritize smaller offsets then note off
	sort.SliceStable(reduced, func(i, j int) bool {
		if reduced[i].micros != reduced[j].micros {
			return reduced[i].micros < reduced[j].micros
		}
		return reduced[i].isNoteOff && !reduced[j].isNoteOff
	})

	type activeNote struct {
		onsetMicros int64
		velocity    uint8
	}
	pressed := make(map[uint8]activeNote)

	var notes []model.Note
	for _, evt := range reduced {
		if evt.isNoteOff {
			a, ok := pressed[evt.key]
			if !ok {
				continue
			}
			delete(pressed, evt.key)
			notes = append(notes, model.Note{
				OnsetSec:    float64(a.onsetMicros) / 1e6,
				DurationSec: float64(evt.micros-a.onsetMicros) / 1e6,
				Key:         evt.key,
				Velocity:    a.velocity,
			})
		} else {
			pressed[evt.key] = activeNote{onsetMicros: evt.micros, velocity: evt.velocity}
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].OnsetSec < notes[j].OnsetSec
	})
	return notes, nil
}

// FirstProgram returns the program of the first program change in the
// file, if there is one.
func FirstProgram(s *smf.SMF) (uint8, bool) {
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel uint8
			var program uint8
			if event.Message.GetProgramChange(&channel, &program) {
				return program, true
			}
		}
	}
	return 0, false
}

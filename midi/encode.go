package midi

import (
	"math"
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/notepipe/config"
	"github.com/jsphweid/notepipe/model"
)

type timedMessage struct {
	tick    uint32
	noteOff bool
	msg     gomidi.Message
}

// Encode lays the notes out on a single track: tempo and program change
// at tick 0, then a note-on/note-off pair per note at
// round(onset * ticksPerSecond). Out-of-range pitch or velocity values
// are passed through untouched.
func Encode(notes []model.Note, cfg config.Config) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(cfg.TicksPerBeat)

	var track smf.Track
	track.Add(0, smf.MetaTempo(cfg.BPM))
	track.Add(0, gomidi.ProgramChange(0, cfg.Program))

	tps := cfg.TicksPerSecond()
	var events []timedMessage
	for _, n := range notes {
		on := uint32(math.Round(n.OnsetSec * tps))
		off := uint32(math.Round((n.OnsetSec + n.DurationSec) * tps))
		events = append(events, timedMessage{
			tick: on,
			msg:  gomidi.NoteOn(0, n.Key, n.Velocity),
		})
		events = append(events, timedMessage{
			tick:    off,
			noteOff: true,
			msg:     gomidi.NoteOff(0, n.Key),
		})
	}

	// note-offs win ties so repeats of a pitch don't swallow each other
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].noteOff && !events[j].noteOff
	})

	var lastTick uint32
	for _, evt := range events {
		track.Add(evt.tick-lastTick, evt.msg)
		lastTick = evt.tick
	}
	track.Close(0)

	s.Tracks = append(s.Tracks, track)
	return &s
}

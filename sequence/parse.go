package sequence

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/notepipe/model"
	"github.com/jsphweid/notepipe/util"
)

// The three line formats the encoder accepts, auto-detected from the
// first meaningful line of the file.
const (
	FormatCSV        = "csv"        // onset,duration,pitch[,velocity]
	FormatSequential = "sequential" // pitch duration [velocity], onsets accumulate
	FormatRhythmic   = "rhythmic"   // pitch token [velocity], token names a beat fraction
)

const defaultVelocity = 100

var durationTokens = map[string]float64{
	"w": 4.0,
	"h": 2.0,
	"q": 1.0,
	"e": 0.5,
	"s": 0.25,
	"t": 0.125,
}

var noteRe = regexp.MustCompile(`^([A-Ga-g])([#b]?)(-?\d+)$`)

var noteSemitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// ParsePitch accepts either a raw MIDI key number or a note name like
// C4, F#3 or Bb2 (C4 = 60).
func ParsePitch(token string) (uint8, error) {
	if key, err := strconv.Atoi(token); err == nil {
		if key < 0 || key > 127 {
			return 0, fmt.Errorf("pitch %v is outside the MIDI key range", key)
		}
		return uint8(key), nil
	}

	m := noteRe.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, fmt.Errorf("invalid pitch token %q", token)
	}
	semitone := noteSemitones[strings.ToUpper(m[1])]
	switch m[2] {
	case "#":
		semitone++
	case "b":
		semitone--
	}
	octave, _ := strconv.Atoi(m[3])
	key := (octave+1)*12 + semitone
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("note %q is outside the MIDI key range", token)
	}
	return uint8(key), nil
}

func parseVelocity(parts []string, idx int) (uint8, error) {
	if len(parts) <= idx || parts[idx] == "" {
		return defaultVelocity, nil
	}
	vel, err := strconv.Atoi(parts[idx])
	if err != nil {
		return 0, fmt.Errorf("invalid velocity token %q", parts[idx])
	}
	return uint8(vel), nil
}

func skippable(s string) bool {
	return s == "" || strings.HasPrefix(s, "#")
}

// DetectFormat picks the line format from the first meaningful line.
func DetectFormat(lines []string) string {
	for _, raw := range lines {
		s := strings.TrimSpace(raw)
		if skippable(s) {
			continue
		}
		if strings.Contains(s, ",") {
			return FormatCSV
		}
		parts := strings.Fields(s)
		if len(parts) >= 2 {
			if _, err := strconv.ParseFloat(parts[1], 64); err == nil {
				return FormatSequential
			}
			return FormatRhythmic
		}
	}
	return FormatSequential
}

func parseCSV(lines []string) ([]model.Note, error) {
	var notes []model.Note
	for i, raw := range lines {
		s := strings.TrimSpace(raw)
		if skippable(s) {
			continue
		}
		parts := strings.Split(s, ",")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if len(parts) < 3 {
			return nil, fmt.Errorf("line %v: need at least onset,duration,pitch", i+1)
		}
		onset, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %v: invalid onset token %q", i+1, parts[0])
		}
		dur := 0.5
		if parts[1] != "" {
			dur, err = strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %v: invalid duration token %q", i+1, parts[1])
			}
		}
		key, err := ParsePitch(parts[2])
		if err != nil {
			return nil, fmt.Errorf("line %v: %v", i+1, err)
		}
		vel, err := parseVelocity(parts, 3)
		if err != nil {
			return nil, fmt.Errorf("line %v: %v", i+1, err)
		}
		notes = append(notes, model.Note{OnsetSec: onset, DurationSec: dur, Key: key, Velocity: vel})
	}
	return notes, nil
}

func parseSequential(lines []string) ([]model.Note, error) {
	var notes []model.Note
	var cursor float64
	for i, raw := range lines {
		s := strings.TrimSpace(raw)
		if skippable(s) {
			continue
		}
		parts := strings.Fields(s)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %v: need pitch and duration", i+1)
		}
		key, err := ParsePitch(parts[0])
		if err != nil {
			return nil, fmt.Errorf("line %v: %v", i+1, err)
		}
		dur, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %v: invalid duration token %q", i+1, parts[1])
		}
		vel, err := parseVelocity(parts, 2)
		if err != nil {
			return nil, fmt.Errorf("line %v: %v", i+1, err)
		}
		notes = append(notes, model.Note{OnsetSec: cursor, DurationSec: dur, Key: key, Velocity: vel})
		cursor += dur
	}
	return notes, nil
}

func parseRhythmic(lines []string, bpm float64) ([]model.Note, error) {
	var notes []model.Note
	var cursorBeats float64
	for i, raw := range lines {
		s := strings.TrimSpace(raw)
		if skippable(s) {
			continue
		}
		parts := strings.Fields(s)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %v: need pitch and duration token", i+1)
		}
		key, err := ParsePitch(parts[0])
		if err != nil {
			return nil, fmt.Errorf("line %v: %v", i+1, err)
		}
		beats, ok := durationTokens[strings.ToLower(parts[1])]
		if !ok {
			known := util.GetKeys(durationTokens)
			sort.Strings(known)
			return nil, fmt.Errorf("line %v: unknown duration token %q (want one of %v)", i+1, parts[1], known)
		}
		vel, err := parseVelocity(parts, 2)
		if err != nil {
			return nil, fmt.Errorf("line %v: %v", i+1, err)
		}
		notes = append(notes, model.Note{
			OnsetSec:    cursorBeats * 60.0 / bpm,
			DurationSec: beats * 60.0 / bpm,
			Key:         key,
			Velocity:    vel,
		})
		cursorBeats += beats
	}
	return notes, nil
}

// ReadFile parses a sequence file into placed notes, sorted by onset.
// The bpm only matters for the rhythmic format, where durations are
// beat fractions.
func ReadFile(path string, bpm float64) ([]model.Note, string, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not read sequence file... %v", err)
	}
	lines := strings.Split(string(dat), "\n")
	format := DetectFormat(lines)

	var notes []model.Note
	switch format {
	case FormatCSV:
		notes, err = parseCSV(lines)
	case FormatSequential:
		notes, err = parseSequential(lines)
	default:
		notes, err = parseRhythmic(lines, bpm)
	}
	if err != nil {
		return nil, format, fmt.Errorf("could not parse %v... %v", path, err)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].OnsetSec < notes[j].OnsetSec
	})
	return notes, format, nil
}

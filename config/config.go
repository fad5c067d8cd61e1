package config

// Config carries the parameters for one pipeline run. The original
// scripts kept these as top-of-file constants; every stage now takes
// them explicitly.
type Config struct {
	// generator
	NumNotes    int
	MaxPitch    uint8
	MaxDuration int
	Velocity    uint8

	// encoder
	BPM          float64
	TicksPerBeat uint16
	Program      uint8
}

// Default returns the demo parameters. MaxPitch stops at 60 rather than
// the full 127-key range; it was never a requirement, so it stays a
// plain field that flags can override.
func Default() Config {
	return Config{
		NumNotes:     250,
		MaxPitch:     60,
		MaxDuration:  10,
		Velocity:     100,
		BPM:          120,
		TicksPerBeat: 480,
		Program:      101,
	}
}

func (c Config) TicksPerSecond() float64 {
	return float64(c.TicksPerBeat) * c.BPM / 60.0
}

package cmd

import (
	"fmt"

	"github.com/jsphweid/notepipe/config"
	"github.com/jsphweid/notepipe/midi"
	"github.com/jsphweid/notepipe/sequence"
	"github.com/spf13/cobra"
)

var (
	encBPM     float64
	encPPQ     int
	encProgram int
)

func init() {
	encodeCmd.Flags().Float64Var(&encBPM, "bpm", 0, "tempo in beats per minute")
	encodeCmd.Flags().IntVar(&encPPQ, "ppq", 0, "resolution in ticks per beat")
	encodeCmd.Flags().IntVar(&encProgram, "program", -1, "instrument program number (0..127)")
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode <in.txt> <out.mid>",
	Short: "Encodes a note sequence as a Standard MIDI File",
	Long:  `Encodes a note sequence as a Standard MIDI File. The input format (csv, sequential or rhythmic) is auto-detected.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(Encode(args[0], args[1]))
	},
}

// Encode runs the encoder stage from in to out.
func Encode(in string, out string) error {
	cfg := config.Default()
	if encBPM > 0 {
		cfg.BPM = encBPM
	}
	if encPPQ > 0 {
		cfg.TicksPerBeat = uint16(encPPQ)
	}
	if encProgram >= 0 {
		cfg.Program = uint8(encProgram)
	}

	notes, format, err := sequence.ReadFile(in, cfg.BPM)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		return fmt.Errorf("no notes parsed from %v", in)
	}

	s := midi.Encode(notes, cfg)
	if err := midi.WriteMidiFile(s, out); err != nil {
		return err
	}
	fmt.Printf("Wrote %v notes (detected format: %v) to %v at %v BPM\n",
		len(notes), format, out, cfg.BPM)
	return nil
}

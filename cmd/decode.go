package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/notepipe/midi"
	"github.com/jsphweid/notepipe/table"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/gm"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode <in.mid> [out.csv]",
	Short: "Decodes a Standard MIDI File into a CSV note table",
	Long:  `Decodes a Standard MIDI File into a CSV note table, one "onset_seconds,duration_seconds,note_name,velocity" row per note.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		out := ""
		if len(args) == 2 {
			out = args[1]
		}
		cobra.CheckErr(Decode(args[0], out))
	},
}

// Decode runs the decoder stage from in to out. An empty out derives
// the path from in by swapping the extension for .csv.
func Decode(in string, out string) error {
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".csv"
	}

	s, err := midi.ReadMidiFile(in)
	if err != nil {
		return err
	}
	notes, err := midi.Decode(s)
	if err != nil {
		return err
	}
	if err := table.WriteCSV(notes, out); err != nil {
		return err
	}

	if program, ok := midi.FirstProgram(s); ok {
		fmt.Printf("Decoded %v notes (program: %v) to %v\n", len(notes), gm.Instr(program), out)
	} else {
		fmt.Printf("Decoded %v notes to %v\n", len(notes), out)
	}
	return nil
}

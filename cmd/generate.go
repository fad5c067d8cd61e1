package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jsphweid/notepipe/config"
	"github.com/jsphweid/notepipe/sequence"
	"github.com/spf13/cobra"
)

var (
	genNumNotes    int
	genMaxPitch    int
	genMaxDuration int
	genSeed        int64
)

func init() {
	generateCmd.Flags().IntVarP(&genNumNotes, "notes", "n", 0, "how many notes to sample")
	generateCmd.Flags().IntVar(&genMaxPitch, "max-pitch", 0, "largest pitch to sample (1..127)")
	generateCmd.Flags().IntVar(&genMaxDuration, "max-duration", 0, "largest duration in seconds to sample")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 seeds from the clock)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [out.txt]",
	Short: "Generates a random note sequence",
	Long:  `Generates a random note sequence and writes it as a text file, one "pitch duration velocity" line per note.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := "midi_sequence.txt"
		if len(args) == 1 {
			out = args[0]
		}
		cobra.CheckErr(Generate(out))
	},
}

// Generate runs the generator stage against out.
func Generate(out string) error {
	cfg := config.Default()
	if genNumNotes > 0 {
		cfg.NumNotes = genNumNotes
	}
	if genMaxPitch > 0 {
		cfg.MaxPitch = uint8(genMaxPitch)
	}
	if genMaxDuration > 0 {
		cfg.MaxDuration = genMaxDuration
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	events := sequence.Generate(cfg, rnd)
	if err := sequence.WriteFile(out, events, cfg); err != nil {
		return err
	}
	fmt.Printf("Wrote %v notes (%v seconds of material) to %v\n",
		len(events), sequence.TotalSeconds(events), out)
	return nil
}

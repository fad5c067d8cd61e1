package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notepipe",
	Short: "Random notes to MIDI and back",
	Long:  `Generates random note sequences, encodes them into Standard MIDI Files and decodes those back into CSV note tables.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

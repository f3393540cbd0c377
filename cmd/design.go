package cmd

import (
	"github.com/gatewaytools/gwprime/internal/gwprime"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// designCmd represents the design command
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Design Gateway primer pairs for the coding sequences in a record",
	Long: `Design PCR primer pairs for cloning each coding sequence of an input
record into a Gateway-compatible vector.

Each CDS is located within the record's gene sequence (the mapping must be
unique), candidate primers are grown from fixed seed windows at the 5' and 3'
ends of the CDS, filtered by uniqueness within the gene sequence and by
melting temperature, and the surviving forward and reverse candidates are
paired by Tm difference. Accepted pairs are written, with their Gateway
adapters attached, to a JSON output file.

A CDS whose mapping fails, or for which no primer or pair survives, is
skipped with a warning; the remaining CDSs and records still proceed.`,
	Run: gwprime.DesignCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(designCmd)

	// paths to the input record file(s) and output file
	designCmd.Flags().StringP("in", "i", "", "Input record file(s) <FASTA>, comma separated")
	designCmd.Flags().StringP("out", "o", "", "Output file name for primer pairs <JSON>")

	// primer acceptance settings
	designCmd.Flags().Float64P("min-tm", "m", 50.0, "Minimum primer melting temperature (Celsius)")
	designCmd.Flags().Float64P("max-tm", "M", 75.0, "Maximum primer melting temperature (Celsius)")
	designCmd.Flags().Float64P("max-tm-diff", "d", 5.0, "Maximum Tm difference within a primer pair (Celsius)")
	designCmd.Flags().Bool("closest", false, "Keep only the pair(s) with the closest forward and reverse Tm")
	designCmd.Flags().Bool("n-fusion", false, "Design for an N-terminal fusion tag")
	designCmd.Flags().Bool("c-fusion", false, "Design for a C-terminal fusion tag (drops the stop codon)")

	// reaction conditions for the Tm calculation
	designCmd.Flags().Float64("cation", 50.0, "Monovalent cation concentration (mM)")
	designCmd.Flags().Float64("magnesium", 1.5, "Mg2+ concentration (mM)")
	designCmd.Flags().Float64("dntp", 0.2, "dNTP concentration (mM)")
	designCmd.Flags().Float64("primer", 200.0, "Primer concentration (nM)")

	// reporting
	designCmd.Flags().IntP("line-width", "w", 60, "Line width of the text report")
	designCmd.Flags().BoolP("verbose", "v", false, "Write a text report to stdout")

	// bind the settings to viper
	viper.BindPFlag("min-tm", designCmd.Flags().Lookup("min-tm"))
	viper.BindPFlag("max-tm", designCmd.Flags().Lookup("max-tm"))
	viper.BindPFlag("max-tm-diff", designCmd.Flags().Lookup("max-tm-diff"))
	viper.BindPFlag("closest", designCmd.Flags().Lookup("closest"))
	viper.BindPFlag("n-fusion", designCmd.Flags().Lookup("n-fusion"))
	viper.BindPFlag("c-fusion", designCmd.Flags().Lookup("c-fusion"))
	viper.BindPFlag("cation", designCmd.Flags().Lookup("cation"))
	viper.BindPFlag("magnesium", designCmd.Flags().Lookup("magnesium"))
	viper.BindPFlag("dntp", designCmd.Flags().Lookup("dntp"))
	viper.BindPFlag("primer", designCmd.Flags().Lookup("primer"))
	viper.BindPFlag("line-width", designCmd.Flags().Lookup("line-width"))
	viper.BindPFlag("verbose", designCmd.Flags().Lookup("verbose"))
}

package cmd

import (
	"github.com/gatewaytools/gwprime/internal/gwprime"
	"github.com/spf13/cobra"
)

// conditionsCmd is for listing the reaction conditions and the
// nearest-neighbor table behind the Tm calculation. Useful for checking
// what a settings file changed before a run.
var conditionsCmd = &cobra.Command{
	Use:   "conditions",
	Short: "List the reaction conditions and thermodynamic parameters",
	Long: `Lists the active reaction conditions (cation, Mg2+, dNTP and primer
concentrations), the Tm acceptance window, and the nearest-neighbor
enthalpy/entropy table used to compute primer melting temperatures.

	<pair>: <dH> <dS>`,
	Run: gwprime.ConditionsCmd,
}

// set flags
func init() {
	RootCmd.AddCommand(conditionsCmd)
}

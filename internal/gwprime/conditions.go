package gwprime

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/gatewaytools/gwprime/config"
	"github.com/spf13/cobra"
)

// ConditionsCmd is for listing the active reaction conditions and the
// nearest-neighbor parameters behind the Tm calculation. Useful for
// checking what a settings file or flag actually changed.
func ConditionsCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	fmt.Printf("monovalent cation  %.1f mM\n", conf.Cation)
	fmt.Printf("Mg2+               %.1f mM\n", conf.Magnesium)
	fmt.Printf("dNTP               %.1f mM\n", conf.DNTP)
	fmt.Printf("primer             %.1f nM\n", conf.Primer)
	fmt.Printf("Tm window          %.1f-%.1f C (max pair diff %.1f)\n\n", conf.MinTm, conf.MaxTm, conf.MaxTmDiff)

	keys := make([]string, 0, len(nnTable))
	for key := range nnTable {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "pair\tdH (kcal/mol)\tdS (cal/K.mol)\t\n")
	for _, key := range keys {
		e := nnTable[key]
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\n", key, e.H, e.S)
	}
	w.Flush()
}

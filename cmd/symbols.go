package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vanrebal/internal/renderer"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the fund symbols the rebalancer trades",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(renderer.SymbolTable())
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}

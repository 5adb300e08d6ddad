package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/patternkit/pkg/patternkit/observer"
)

func newObserverCmd(a *app) *cobra.Command {
	var (
		rounds int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "observer",
		Short: "Notify a bank and a broker of stock quotes",
		Long: `Notify a bank and a broker of stock quotes.

The broker stops trading after the first round. --seed 0 seeds from the clock.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rounds <= 0 {
				return fmt.Errorf("rounds must be positive, got %d", rounds)
			}

			var src rand.Source
			if seed != 0 {
				src = rand.NewSource(seed)
			}
			stock := observer.NewStock(src, a.logger)
			observer.NewBank("Sber", stock, a.logger)
			broker := observer.NewBroker("Ivan", stock, a.logger)

			for round := 1; round <= rounds; round++ {
				info, decisions := stock.Market()
				printLines(cmd, fmt.Sprintf("round %d: USD %d, EUR %d", round, info.USD, info.Euro))
				printLines(cmd, decisions...)
				if round == 1 {
					broker.StopTrade()
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 2, "trading rounds")
	cmd.Flags().Int64Var(&seed, "seed", 0, "quote generator seed")
	return cmd
}

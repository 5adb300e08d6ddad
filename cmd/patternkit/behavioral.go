package main

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/patternkit/pkg/patternkit/strategy"
	"github.com/randalmurphal/patternkit/pkg/patternkit/templatemethod"
)

func newStrategyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategy",
		Short: "Switch a car from petrol to electricity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			car := strategy.NewCar(4, "Mercedes", strategy.PetrolMove{})
			printLines(cmd, car.Move())
			car.SetMover(strategy.ElectricMove{})
			printLines(cmd, car.Move())
			return nil
		},
	}
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Walk through school and university",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printLines(cmd, "school:")
			printLines(cmd, templatemethod.Learn(templatemethod.School{})...)
			printLines(cmd, "university:")
			printLines(cmd, templatemethod.Learn(templatemethod.University{})...)
			return nil
		},
	}
}

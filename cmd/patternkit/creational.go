package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/patternkit/pkg/patternkit/abstractfactory"
	"github.com/randalmurphal/patternkit/pkg/patternkit/builder"
	"github.com/randalmurphal/patternkit/pkg/patternkit/factory"
	"github.com/randalmurphal/patternkit/pkg/patternkit/prototype"
)

func newPrototypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prototype",
		Short: "Clone figures shallowly and deeply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rect := &prototype.Rectangle{Width: 30, Height: 40}
			rectClone := rect.Clone()

			circle := prototype.NewCircle(30, 50, 60)
			shallow := circle.Clone()
			deep, err := circle.DeepCopy()
			if err != nil {
				return err
			}
			circle.Center.X = 100

			printLines(cmd,
				"original: "+rect.Info(),
				"clone:    "+rectClone.Info(),
				"original: "+circle.Info(),
				"shallow:  "+shallow.Info(),
				"deep:     "+deep.Info(),
			)
			return nil
		},
	}
}

func newBuilderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builder",
		Short: "Bake rye and wheat bread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var baker builder.Baker
			for _, b := range []builder.BreadBuilder{&builder.RyeBreadBuilder{}, &builder.WheatBreadBuilder{}} {
				printLines(cmd, baker.Bake(b).String(), "")
			}
			return nil
		},
	}
}

func newFactoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "factory",
		Short: "Let developers build their kind of house",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := factory.NewCatalog(a.logger)
			orders := []struct{ kind, company string }{
				{factory.KindPanel, "Slag Block Ltd"},
				{factory.KindWooden, "Timber Co"},
			}
			for _, o := range orders {
				dev, err := catalog.Developer(o.kind, o.company)
				if err != nil {
					return err
				}
				printLines(cmd, fmt.Sprintf("%s built a %s house", dev.Name(), dev.Create().Kind()))
			}
			return nil
		},
	}
}

func newAbstractFactoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abstract-factory",
		Short: "Equip an elf and a warrior",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factories := abstractfactory.NewFactories()
			for _, race := range factories.Races() {
				hero, err := factories.Hero(race)
				if err != nil {
					return err
				}
				printLines(cmd, fmt.Sprintf("%s: %s, %s", race, hero.Hit(), hero.Run()))
			}
			return nil
		},
	}
}

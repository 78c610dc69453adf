package habits

import (
	"fmt"

	"github.com/julianstephens/tend/internal/cli"
	"github.com/julianstephens/tend/internal/dateutil"
)

type StreaksCmd struct {
	AsOf string `help:"View streaks as of a date (default: today)." default:""`
}

func (c *StreaksCmd) Run(ctx *cli.Context) error {
	viewDay, err := cli.ResolveDay(c.AsOf)
	if err != nil {
		return err
	}

	streaks, err := ctx.Engine.StreaksAsOf(viewDay, dateutil.Today())
	if err != nil {
		return err
	}

	if len(streaks) == 0 {
		fmt.Println("No active streaks.")
		return nil
	}

	fmt.Printf("Streaks as of %s:\n\n", viewDay)
	for _, hs := range streaks {
		unit := "days"
		if hs.Streak == 1 {
			unit = "day"
		}
		fmt.Printf("  %3d %s  %s\n", hs.Streak, unit, hs.Habit.Name)
	}
	return nil
}

package habits

import (
	"fmt"

	"github.com/julianstephens/tend/internal/cli"
)

type MarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	day, err := cli.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	nowCompleted, err := ctx.Engine.ToggleCompletion(day, habit.ID)
	if err != nil {
		return err
	}

	if nowCompleted {
		fmt.Printf("Marked habit %q for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", c.Name, day)
	}
	return nil
}

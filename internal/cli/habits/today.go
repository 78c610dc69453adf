package habits

import (
	"fmt"

	"github.com/julianstephens/tend/internal/cli"
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/engine"
)

type TodayCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	day, err := cli.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	completions, err := ctx.Store.CompletionsForDay(day)
	if err != nil {
		return err
	}
	done := make(map[string]bool)
	for _, comp := range completions {
		done[comp.HabitID] = true
	}

	today := dateutil.Today()
	fmt.Printf("Habits for %s:\n\n", day)
	shown, recorded := 0, 0
	for _, habit := range habits {
		if !engine.Visible(habit, day) {
			continue
		}
		shown++

		status := "[ ]"
		if done[habit.ID] {
			status = "[x]"
			recorded++
		}

		streak, err := engine.StreakAsOf(ctx.Store, habit.ID, day, today)
		if err != nil {
			return err
		}
		streakStr := ""
		if streak > 0 {
			streakStr = fmt.Sprintf("  (streak: %d)", streak)
		}

		fmt.Printf("%s %s%s\n", status, habit.Name, streakStr)
	}

	if shown == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Printf("\nRecorded: %d/%d\n", recorded, shown)
	return nil
}

package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tend/internal/cli"
	"github.com/julianstephens/tend/internal/constants"
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/models"
)

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	days := c.Days
	if days < 1 {
		days = constants.DefaultLogDays
	}

	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	today := dateutil.Today()
	var selected []models.Habit
	for _, h := range habits {
		if !engine.Visible(h, today) {
			continue
		}
		if c.Habit != "" && h.Name != c.Habit {
			continue
		}
		selected = append(selected, h)
	}
	if c.Habit != "" && len(selected) == 0 {
		return fmt.Errorf("habit %q not found", c.Habit)
	}
	if len(selected) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	startDay := dateutil.ShiftDate(today, -(days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", days)

	const maxNameLen = 20
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for i := 0; i < days; i++ {
		day := dateutil.ShiftDate(startDay, i)
		fmt.Printf(" %5s", day[5:7]+"/"+day[8:10])
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", maxNameLen+6*days))

	for _, habit := range selected {
		name := habit.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		done, err := ctx.Store.CompletionDays(habit.ID, startDay, today)
		if err != nil {
			return err
		}

		for i := 0; i < days; i++ {
			day := dateutil.ShiftDate(startDay, i)
			if done[day] {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

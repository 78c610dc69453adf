package habits

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/julianstephens/tend/internal/cli"
	"github.com/julianstephens/tend/internal/dateutil"
)

type ExportCmd struct {
	Out  string `short:"o" help:"Output file path (default: stdout)." type:"path"`
	From string `help:"Start of the export range (YYYY-MM-DD)."`
	To   string `help:"End of the export range (default: today)."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	to, err := cli.ResolveDay(c.To)
	if err != nil {
		return err
	}
	from := c.From
	if from == "" {
		from = "0000-01-01"
	} else if !dateutil.Valid(from) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", from)
	}

	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	out := os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"habit_id", "habit_name", "day"}); err != nil {
		return err
	}

	rows := 0
	for _, habit := range habits {
		done, err := ctx.Store.CompletionDays(habit.ID, from, to)
		if err != nil {
			return err
		}
		days := make([]string, 0, len(done))
		for day := range done {
			days = append(days, day)
		}
		sort.Strings(days)
		for _, day := range days {
			if err := w.Write([]string{habit.ID, habit.Name, day}); err != nil {
				return err
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if c.Out != "" {
		fmt.Printf("Exported %d completions to %s\n", rows, c.Out)
	}
	return nil
}

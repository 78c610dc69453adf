package habits

import (
	"fmt"
	"sort"

	"github.com/julianstephens/tend/internal/cli"
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/models"
)

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *cli.Context) error {
	summary, err := ctx.Engine.Summary(dateutil.Today())
	if err != nil {
		return err
	}

	if len(summary.Global) == 0 && len(summary.PerHabit) == 0 {
		fmt.Println("No achievements earned yet.")
		return nil
	}

	if len(summary.Global) > 0 {
		fmt.Println("All habits:")
		printStats(summary.Global)
	}

	// Stable output: per-habit sections follow display position.
	ids := make([]string, 0, len(summary.PerHabit))
	for id := range summary.PerHabit {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return summary.Habits[ids[i]].Position < summary.Habits[ids[j]].Position
	})

	for _, id := range ids {
		fmt.Printf("\n%s:\n", summary.Habits[id].Name)
		printStats(summary.PerHabit[id])
	}
	return nil
}

func printStats(stats []models.AchievementStat) {
	byType := make(map[models.AchievementType]models.AchievementStat, len(stats))
	for _, st := range stats {
		byType[st.Type] = st
	}
	for _, typ := range models.AchievementTypes {
		st, ok := byType[typ]
		if !ok {
			continue
		}
		times := "times"
		if st.Count == 1 {
			times = "time"
		}
		fmt.Printf("  %-15s earned %d %s (last: %s)\n", st.Type.Label(), st.Count, times, st.LastEarnedOn)
	}
}

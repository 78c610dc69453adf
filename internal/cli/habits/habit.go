package habits

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/tend/internal/cli"
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Rename  HabitRenameCmd  `cmd:"" help:"Rename a habit."`
	Move    HabitMoveCmd    `cmd:"" help:"Move a habit to a new display position."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	existing, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      c.Name,
		CreatedOn: dateutil.Today(),
		Position:  len(existing),
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct {
	Deleted bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	shown := 0
	for _, habit := range habits {
		if habit.Deleted() && !c.Deleted {
			continue
		}
		status := ""
		if habit.Deleted() {
			status = fmt.Sprintf(" [deleted %s]", *habit.DeletedOn)
		}
		fmt.Printf("%2d. %s%s\n", habit.Position+1, habit.Name, status)
		shown++
	}

	if shown == 0 {
		fmt.Println("No habits found.")
	}
	return nil
}

type HabitRenameCmd struct {
	Name    string `arg:"" help:"Current habit name."`
	NewName string `arg:"" help:"New habit name."`
}

func (c *HabitRenameCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if _, err := ctx.Store.GetHabitByName(c.NewName); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.NewName)
	}

	if err := ctx.Store.RenameHabit(habit.ID, c.NewName); err != nil {
		return err
	}

	fmt.Printf("Renamed habit %q to %q\n", c.Name, c.NewName)
	return nil
}

type HabitMoveCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Position int    `arg:"" help:"New display position (1-based)."`
}

func (c *HabitMoveCmd) Run(ctx *cli.Context) error {
	if c.Position < 1 {
		return fmt.Errorf("position must be at least 1")
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.MoveHabit(habit.ID, c.Position-1); err != nil {
		return err
	}

	fmt.Printf("Moved habit %q to position %d\n", c.Name, c.Position)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID, dateutil.Today()); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(This is a soft delete. Use 'tend habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	habits, err := ctx.Store.ListHabits()
	if err != nil {
		return err
	}

	var habit *models.Habit
	for i := range habits {
		if habits[i].Name == c.Name && habits[i].Deleted() {
			habit = &habits[i]
			break
		}
	}
	if habit == nil {
		return fmt.Errorf("deleted habit %q not found", c.Name)
	}

	if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.Name)
	return nil
}

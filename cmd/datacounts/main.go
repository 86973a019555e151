// Command datacounts prints row counts for every table in the database.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"gympulse/internal/config"
	"gympulse/internal/db"
	"gympulse/internal/logger"
	"gympulse/internal/recipe"
	"gympulse/internal/stats"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := stats.NewService(stats.NewRepository(database), recipe.NewRepository(database))
	report, err := svc.Report(ctx)
	if err != nil {
		logger.Errorf("Failed to count data: %v", err)
		os.Exit(1)
	}

	render(os.Stdout, report)
}

var (
	heading = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.FgYellow)
	total   = color.New(color.FgGreen, color.Bold)
)

func render(w io.Writer, r *stats.Report) {
	heading.Fprintln(w, "=== DATA COUNTS ===")

	section(w, "Accounts",
		row{"Total", r.Accounts.Total},
		row{"Trainers", r.Accounts.Trainers},
		row{"Users", r.Accounts.Users},
	)
	section(w, "Profiles",
		row{"Paid", r.Profiles.Paid},
		row{"Unpaid", r.Profiles.Unpaid},
	)
	section(w, "Attendance",
		row{"Total", r.Attendance.Total},
		row{"Pending", r.Attendance.Pending},
		row{"Accepted", r.Attendance.Accepted},
	)
	section(w, "Recipes",
		row{"Veg", r.Recipes.Veg},
		row{"Non-veg", r.Recipes.NonVeg},
		row{"Vegan", r.Recipes.Vegan},
		row{"Other", r.Recipes.Other},
	)
	section(w, "Other",
		row{"Diet plans", r.DietPlans},
		row{"Food entries", r.FoodEntries},
		row{"Workout videos", r.Videos},
		row{"Reviews", r.Reviews},
		row{"Chat messages", r.ChatMessages},
	)

	fmt.Fprintln(w)
	total.Fprintf(w, "Grand total: %d\n", r.GrandTotal)
}

type row struct {
	name  string
	count int
}

func section(w io.Writer, title string, rows ...row) {
	fmt.Fprintln(w)
	heading.Fprintln(w, title)
	for _, r := range rows {
		label.Fprintf(w, "  %-16s", r.name)
		fmt.Fprintf(w, "%d\n", r.count)
	}
}

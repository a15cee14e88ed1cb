package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"futureself/internal/projection"
	"futureself/internal/survey"
	"futureself/internal/timeline"
)

var projectFlags surveyFlags

// projectCmd prints the deterministic health projection for every timeline
// offset. It never calls the image service.
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Print the projected health table for every timeline interval",
	Long: `Computes the deterministic health projection (weight, height, BMI,
calorie intake, life expectancy) for each of the 14 five-year intervals.

Example:
  futureself project --age 30 --height 68 --weight 150 --answers answers.yaml`,
	RunE: runProject,
}

func init() {
	projectFlags.register(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	info, answers, err := projectFlags.parse()
	if err != nil {
		return err
	}

	var engine projection.Engine
	life := engine.Project(info, answers, 0).LifeExpectancy

	var sb strings.Builder
	fmt.Fprintf(&sb, "Projected life expectancy: %d\n\n", life)
	fmt.Fprintf(&sb, "%-8s | %-4s | %-11s | %-8s | %-5s | %-9s\n",
		"Offset", "Age", "Weight (lb)", "Height", "BMI", "kcal/day")
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	for _, offset := range timeline.DefaultOffsets() {
		age := info.Age + offset
		if age > life {
			fmt.Fprintf(&sb, "+%-7d | %-4d | %s\n", offset, age, "beyond projected life expectancy")
			continue
		}
		snap := engine.Project(info, answers, offset)
		fmt.Fprintf(&sb, "+%-7d | %-4d | %-11d | %-8s | %-5.1f | %-9d\n",
			offset, age, snap.ProjectedWeight, snap.ProjectedHeight, snap.BMI, snap.CalorieIntake)
	}

	cmd.Print(sb.String())
	return nil
}

// basicInfoLine is shared by project and report output.
func basicInfoLine(info survey.BasicInfo) string {
	return fmt.Sprintf("Age %d, %.0f inches, %.0f lbs", info.Age, info.Height, info.Weight)
}

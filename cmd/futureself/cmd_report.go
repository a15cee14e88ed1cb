package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"futureself/internal/lifestyle"
	"futureself/internal/projection"
	"futureself/internal/survey"
	"futureself/internal/timeline"
)

var (
	reportFlags surveyFlags
	reportPlain bool
)

// reportCmd renders the full projection report as styled markdown.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a markdown health projection report",
	Long: `Builds the complete projection report: lifestyle factors, mood outlook,
and the health trajectory for every timeline interval.

Example:
  futureself report --age 30 --height 68 --weight 150 --answers answers.yaml`,
	RunE: runReport,
}

func init() {
	reportFlags.register(reportCmd)
	reportCmd.Flags().BoolVar(&reportPlain, "plain", false, "Emit raw markdown without terminal styling")
}

func runReport(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	info, answers, err := reportFlags.parse()
	if err != nil {
		return err
	}

	md := buildReport(info, answers)
	if reportPlain {
		cmd.Print(md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to build renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	cmd.Print(out)
	return nil
}

// buildReport assembles the markdown projection report.
func buildReport(info survey.BasicInfo, answers survey.Answers) string {
	var engine projection.Engine
	factors := lifestyle.Classify(answers)
	life := engine.Project(info, answers, 0).LifeExpectancy

	var b strings.Builder
	b.WriteString("# Future Self Projection\n\n")
	fmt.Fprintf(&b, "**Subject:** %s\n\n", basicInfoLine(info))
	fmt.Fprintf(&b, "**Projected life expectancy:** %d years\n\n", life)
	fmt.Fprintf(&b, "**Outlook:** %s\n\n", factors.Mood.Description())

	b.WriteString("## Lifestyle Factors\n\n")
	b.WriteString("### Working in your favor\n\n")
	writeReportList(&b, factors.Positive)
	b.WriteString("\n### Working against you\n\n")
	writeReportList(&b, factors.Negative)

	b.WriteString("\n## Health Trajectory\n\n")
	b.WriteString("| Years ahead | Age | Weight (lb) | Height | BMI | kcal/day |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, offset := range timeline.DefaultOffsets() {
		age := info.Age + offset
		if age > life {
			fmt.Fprintf(&b, "| +%d | %d | n/a | n/a | n/a | n/a |\n", offset, age)
			continue
		}
		snap := engine.Project(info, answers, offset)
		fmt.Fprintf(&b, "| +%d | %d | %d | %s | %.1f | %d |\n",
			offset, age, snap.ProjectedWeight, snap.ProjectedHeight, snap.BMI, snap.CalorieIntake)
	}
	b.WriteString("\nRows marked n/a fall beyond the projected life expectancy.\n")
	return b.String()
}

func writeReportList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("- None identified.\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

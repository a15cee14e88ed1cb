// Package prompt assembles the natural-language generation instructions sent
// to the image service. Building a prompt never touches the network; the
// output is a request payload only.
package prompt

import (
	"fmt"
	"strings"

	"futureself/internal/lifestyle"
	"futureself/internal/projection"
	"futureself/internal/survey"
)

// BuildInterval produces the instruction for a fixed timeline offset: a
// neutral studio portrait of the subject yearsOffset years from now.
func BuildInterval(info survey.BasicInfo, snap projection.Snapshot, factors lifestyle.Factors, yearsOffset int) string {
	futureAge := info.Age + yearsOffset

	var b strings.Builder
	fmt.Fprintf(&b, "**Objective:** Generate a hyper-realistic, full-body photograph of the person in the provided image, but %d years in the future (at age %d). The depiction must be a direct and accurate reflection of the provided lifestyle data.\n\n",
		yearsOffset, futureAge)

	fmt.Fprintf(&b, "**Subject's Profile:**\n")
	fmt.Fprintf(&b, "- Current Age: %d\n", info.Age)
	fmt.Fprintf(&b, "- Future Age: %d\n", futureAge)
	fmt.Fprintf(&b, "- Projected Weight: Approximately %d lbs.\n\n", snap.ProjectedWeight)

	writeFactorLists(&b, factors)

	fmt.Fprintf(&b, "**Visual Translation Guide (Strictly Adhere):**\n")
	fmt.Fprintf(&b, "- **Body Shape:** The subject's body composition must reflect a weight of ~%d lbs. If negative factors like poor diet or a sedentary lifestyle are present, depict a higher body fat percentage and less muscle tone. If positive factors like regular exercise are present, depict a healthier, toned physique appropriate for their age.\n", snap.ProjectedWeight)
	b.WriteString("- **Skin:** If smoking, high alcohol intake, or poor sun protection are noted, depict corresponding sallow skin, premature wrinkles, and sunspots. If hydration and a good diet are noted, show healthier, more vibrant skin for their age.\n")
	b.WriteString("- **Face:** If sleep is poor, add visible dark circles and tired eyes. If stress is high, show it in facial tension and expression lines.\n")
	b.WriteString("- **Posture:** A sedentary lifestyle should be reflected in poorer, more slumped posture.\n\n")

	b.WriteString("**Final Instructions:** The background must be a neutral gray studio setting. The final image must be a full-body shot. Do not create any violent, graphic, or disturbing content. The result should be a plausible, neutral, and data-driven prediction.")
	return b.String()
}

// BuildCustom produces the instruction for a user-specified age and action.
// It additionally embeds the subject's mood and asks for a setting that fits
// the action instead of the studio backdrop.
func BuildCustom(info survey.BasicInfo, snap projection.Snapshot, factors lifestyle.Factors, targetAge int, actionText string) string {
	mood := factors.Mood.Description()

	var b strings.Builder
	fmt.Fprintf(&b, "**Objective:** Generate a hyper-realistic, full-body photograph of the person in the provided image, but at age %d. The depiction must be a direct and accurate reflection of the provided lifestyle data, and show them performing the requested action.\n\n",
		targetAge)

	fmt.Fprintf(&b, "**Action:** The person should be depicted **%s**.\n\n", actionText)

	fmt.Fprintf(&b, "**Subject's Profile:**\n")
	fmt.Fprintf(&b, "- Current Age: %d\n", info.Age)
	fmt.Fprintf(&b, "- Future Age: %d\n", targetAge)
	fmt.Fprintf(&b, "- Projected Weight: Approximately %d lbs.\n", snap.ProjectedWeight)
	fmt.Fprintf(&b, "- General Mood/Expression: %s\n\n", mood)

	writeFactorLists(&b, factors)

	fmt.Fprintf(&b, "**Visual Translation Guide (Strictly Adhere):**\n")
	fmt.Fprintf(&b, "- **Body Shape:** The subject's body composition must reflect a weight of ~%d lbs and be appropriate for someone performing the action %q. If negative factors like poor diet or a sedentary lifestyle are present, depict a higher body fat percentage and less muscle tone. If positive factors like regular exercise are present, depict a healthier, toned physique appropriate for their age.\n", snap.ProjectedWeight, actionText)
	b.WriteString("- **Skin:** If smoking, high alcohol intake, or poor sun protection are noted, depict corresponding sallow skin, premature wrinkles, and sunspots. If hydration and a good diet are noted, show healthier, more vibrant skin for their age.\n")
	fmt.Fprintf(&b, "- **Face:** The expression should reflect the general mood (%s). If sleep is poor, add visible dark circles and tired eyes. If stress is high, show it in facial tension and expression lines.\n", mood)
	b.WriteString("- **Posture:** A sedentary lifestyle should be reflected in poorer, more slumped posture, unless overridden by the requested action.\n\n")

	fmt.Fprintf(&b, "**Final Instructions:** The background should be a setting that makes sense for the action %q. The final image must be a full-body shot. Do not create any violent, graphic, or disturbing content. The result should be a plausible, neutral, and data-driven prediction.", actionText)
	return b.String()
}

// writeFactorLists renders the positive/negative factor bullets verbatim,
// with an explicit "None specified." placeholder for empty lists.
func writeFactorLists(b *strings.Builder, factors lifestyle.Factors) {
	b.WriteString("**Lifestyle Analysis & Visual Directives:**\n\n")

	b.WriteString("**Positive Factors (leading to healthier aging):**\n")
	writeBullets(b, factors.Positive)
	b.WriteString("\n**Negative Factors (leading to accelerated aging):**\n")
	writeBullets(b, factors.Negative)
	b.WriteString("\n")
}

func writeBullets(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("- None specified.\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

package inference

import (
	"fmt"
	"strings"

	"github.com/herdscan/breed-identifier/internal/catalog"
)

// Disclaimer accompanies every identification response.
const Disclaimer = "This identification is based on AI analysis. For critical decisions, please consult with veterinary experts."

// Recommendations builds the advice list for one identification: breed
// facts interpolated with the confidence score, a confidence-dependent
// remark, and species-specific care bullets.
func Recommendations(breed catalog.Record, confidence float64) []string {
	recommendations := []string{
		fmt.Sprintf("This appears to be a %s with %v%% confidence", breed.Name, confidence),
		fmt.Sprintf("Expected milk yield: %s", breed.MilkYield),
		fmt.Sprintf("Primary uses: %s", strings.Join(breed.Uses, ", ")),
		fmt.Sprintf("Origin: %s", breed.Origin),
	}

	if confidence >= 90 {
		recommendations = append(recommendations, "High confidence identification - breed characteristics clearly match")
	} else {
		recommendations = append(recommendations, "Moderate confidence - consider additional veterinary consultation")
	}

	if breed.Species == catalog.SpeciesCattle {
		recommendations = append(recommendations,
			"Ensure regular vaccination against common cattle diseases",
			"Provide mineral supplements as per veterinary advice",
			"Monitor for heat stress during summer months",
		)
	} else {
		recommendations = append(recommendations,
			"Provide wallowing facility for cooling",
			"Feed high-quality roughage for optimal milk production",
			"Regular pregnancy monitoring for breeding females",
		)
	}

	return recommendations
}

// NextSteps returns actionable follow-ups: three common to all animals and
// two specific to the identified species.
func NextSteps(species catalog.Species) []string {
	steps := []string{
		"Consult with a local veterinarian for health assessment",
		"Plan appropriate nutrition based on breed requirements",
		"Consider genetic testing for breeding programs",
	}

	if species == catalog.SpeciesCattle {
		steps = append(steps,
			"Implement proper cattle management practices",
			"Plan breeding schedule based on breed characteristics",
		)
	} else {
		steps = append(steps,
			"Ensure adequate water supply for buffalo needs",
			"Plan for seasonal breeding optimization",
		)
	}

	return steps
}

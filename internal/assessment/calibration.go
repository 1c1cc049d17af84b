package assessment

import (
	"fmt"
	"strings"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/grader"
)

// CalibrationItemID identifies the competency-agnostic self-assessment
// pseudo-item presented while a session is Initializing. It never comes
// from the catalog.
const CalibrationItemID = "p0-calibration"

var calibrationChoices = []string{
	"I have not worked with AI tools at all",
	"I use AI tools occasionally but have not built anything with them",
	"I have built small prototypes or scripts using AI APIs",
	"I have shipped AI-assisted features to production",
	"I design and operate AI systems as a core part of my work",
}

// CalibrationItem returns the pseudo-item answered first in every
// session. Its graded score seeds all competency thetas by a shared
// offset.
func CalibrationItem() catalog.Item {
	return catalog.Item{
		ID:      CalibrationItemID,
		Type:    catalog.TypeMultipleChoice,
		Stem:    "Which best describes your hands-on experience with AI systems so far?",
		Choices: append([]string(nil), calibrationChoices...),
	}
}

// gradeCalibration maps the chosen self-assessment rung onto [0,1] by
// position. There is no correct answer.
func gradeCalibration(item catalog.Item, answer string) (float64, error) {
	answer = strings.TrimSpace(answer)
	for i, c := range item.Choices {
		if strings.EqualFold(answer, c) {
			return float64(i) / float64(len(item.Choices)-1), nil
		}
	}
	return 0, fmt.Errorf("choice %q is not a calibration option: %w", answer, grader.ErrInvalidAnswer)
}

package ideas

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are a marketing expert.
Today is %s.
Industry: %s.
Holidays today: %s.

Give 2-3 marketing campaign ideas in this exact JSON format, e.g.:

[
  {
    "title": "Example title",
    "description": "A short campaign description."
  }
]

IMPORTANT: Return ONLY clean JSON without any commentary, explanations or markdown fences (` + "```json" + `).
The answer must start with [ and end with ].`

// BuildPrompt renders the instruction sent to the text-generation service.
// Inputs are embedded verbatim; an empty holiday list becomes the literal
// "none" so the model is not shown a dangling comma-join.
func BuildPrompt(industry, date string, holidays []string) string {
	holidayText := "none"
	if len(holidays) > 0 {
		holidayText = strings.Join(holidays, ", ")
	}
	return fmt.Sprintf(promptTemplate, date, industry, holidayText)
}

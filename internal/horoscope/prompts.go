package horoscope

import (
	"fmt"
	"time"
)

// humanDateLayout matches the "Mon Jun 09 2025" style used in prompts and
// fallback seeds, so the same date always renders the same way.
const humanDateLayout = "Mon Jan 02 2006"

// buildPrompt renders the generation prompt for one sign, person and date.
func buildPrompt(sign, name, influence string, date time.Time) string {
	return fmt.Sprintf(`
Generate a short, inspiring daily horoscope for %[1]s for %[2]s, born under the sign of %[1]s (%[3]s influence), for the date %[4]s.
Include: day's energy summary, 1-2 focus areas, lucky color, and a one-line affirmation.
Tone: uplifting, empowering, modern.
Response in Markdown format.
`, sign, name, influence, date.Format(humanDateLayout))
}

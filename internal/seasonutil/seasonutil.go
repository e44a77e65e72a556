package seasonutil

import (
	"fmt"
	"time"
)

// seasonRolloverMonth is when the NBA season starts; October games belong to
// the season labeled by their calendar year.
const seasonRolloverMonth = time.October

// SeasonStartYear returns the start year of the season containing t
// (e.g. March 2024 belongs to the 2023 season).
func SeasonStartYear(t time.Time) int {
	if t.Month() >= seasonRolloverMonth {
		return t.Year()
	}
	return t.Year() - 1
}

// Label formats a season start year as "2023-2024".
func Label(startYear int) string {
	return fmt.Sprintf("%d-%d", startYear, startYear+1)
}

package dispatch

import (
	"fmt"
	"time"
)

// DueKey converts an instant to the wall-clock date and minute in a
// fixed-offset zone. Due reminders are selected by exact string
// equality against these keys, so the formats must match what the
// scheduling UI stores: "YYYY-MM-DD" and 24-hour "HH:MM".
func DueKey(now time.Time, offsetHours int) (dateKey, timeKey string) {
	zone := time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*60*60)
	local := now.In(zone)
	return local.Format("2006-01-02"), local.Format("15:04")
}

package service

import (
	"fmt"
	"time"

	"climabrasil-server/internal/modules/clima/types"
)

// BuildWindow returns the UTC date and every hour label from midnight through
// now's hour. The slice is never empty: at minimum it holds "0000".
func BuildWindow(now time.Time) types.TimeWindow {
	utc := now.UTC()
	hours := make([]string, 0, utc.Hour()+1)
	for h := 0; h <= utc.Hour(); h++ {
		hours = append(hours, fmt.Sprintf("%02d00", h))
	}
	return types.TimeWindow{
		Date:  utc.Format("2006-01-02"),
		Hours: hours,
	}
}

package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

const icsTimeLayout = "20060102T150405Z"

// BuildInterviewICS renders the calendar invite attached to scheduling
// emails. One VEVENT per interview, keyed by the interview id so resends
// update the same calendar entry.
func BuildInterviewICS(iv *domain.Interview, slot *domain.Slot, app *domain.Application) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Uptick Talent//Interview Scheduler//EN",
		"METHOD:REQUEST",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@uptick-talent", iv.ID),
		fmt.Sprintf("DTSTAMP:%s", time.Now().UTC().Format(icsTimeLayout)),
		fmt.Sprintf("DTSTART:%s", slot.StartTime.UTC().Format(icsTimeLayout)),
		fmt.Sprintf("DTEND:%s", slot.EndTime.UTC().Format(icsTimeLayout)),
		fmt.Sprintf("SUMMARY:Uptick Talent Interview - %s", escapeICS(app.CandidateName)),
		fmt.Sprintf("DESCRIPTION:Interview for application %s", iv.ApplicationID),
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return strings.Join(lines, "\r\n") + "\r\n"
}

func escapeICS(s string) string {
	r := strings.NewReplacer("\\", "\\\\", ";", "\\;", ",", "\\,", "\n", "\\n")
	return r.Replace(s)
}

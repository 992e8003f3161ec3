package season

import (
	"regexp"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// GuideEvent is a static, date-keyed devotional prompt shown as a badge on
// its matching calendar day. Entries are build-time constants; the MonthDay
// label carries no year, so every entry recurs annually.
type GuideEvent struct {
	MonthDay    string
	Title       string
	Description string
}

var guideEvents = []GuideEvent{
	{"March 5", "Ash Wednesday", "The season begins. Receive ashes and choose the commitments you will carry through it."},
	{"March 9", "First Sunday", "Sundays are feast days. Look back at your first days and share how they went with your connections."},
	{"March 16", "Second Sunday", "Check in with a connection whose commitment looks hard this week."},
	{"March 19", "Feast of St. Joseph", "A traditional day of relaxation of the fast. Consider a small act of celebration."},
	{"March 23", "Third Sunday", "Halfway is near. Adjust a commitment that has proven too easy or too hard."},
	{"March 25", "The Annunciation", "A feast day within the season. Pray for the people whose tasks you can see on this calendar."},
	{"March 30", "Laetare Sunday", "Rejoice: the midpoint. Lighten one burden, yours or someone else's."},
	{"April 6", "Fifth Sunday", "The final stretch begins. Recommit to anything you have let slip."},
	{"April 13", "Palm Sunday", "Holy Week begins. Plan which commitments carry into the week's services."},
	{"April 17", "Maundy Thursday", "A day of shared meals and service. Do one task today for someone else."},
	{"April 18", "Good Friday", "The strictest fast of the season. Keep the day quiet and simple."},
	{"April 19", "Holy Saturday", "The season's last vigil. Review the whole calendar and what it changed."},
	{"April 20", "Easter Sunday", "The season ends in celebration. Every fast is released today."},
}

type guideKey struct {
	month time.Month
	day   int
}

// Labels are free text; only entries matching "MonthName Day" are indexed.
var monthDayPattern = regexp.MustCompile(`^([A-Za-z]+) ([0-9]{1,2})$`)

var guideIndex = buildGuideIndex(guideEvents)

func buildGuideIndex(events []GuideEvent) map[guideKey][]GuideEvent {
	index := make(map[guideKey][]GuideEvent, len(events))
	for _, event := range events {
		key, ok := parseMonthDay(event.MonthDay)
		if !ok {
			log.Warnf("guide event %q has an unparseable date label, skipping", event.Title)
			continue
		}
		index[key] = append(index[key], event)
	}
	return index
}

func parseMonthDay(label string) (guideKey, bool) {
	match := monthDayPattern.FindStringSubmatch(label)
	if match == nil {
		return guideKey{}, false
	}
	month, ok := monthByName(match[1])
	if !ok {
		return guideKey{}, false
	}
	day, err := strconv.Atoi(match[2])
	if err != nil || day < 1 || day > 31 {
		return guideKey{}, false
	}
	return guideKey{month: month, day: day}, true
}

func monthByName(name string) (time.Month, bool) {
	for month := time.January; month <= time.December; month++ {
		if month.String() == name {
			return month, true
		}
	}
	return 0, false
}

// LookupGuideEvents returns the guide entries whose label names the given
// date's UTC month and day. Dates with no configured entry return an empty
// slice.
func LookupGuideEvents(date time.Time) []GuideEvent {
	key := guideKey{month: date.UTC().Month(), day: date.UTC().Day()}
	events := guideIndex[key]
	if events == nil {
		return []GuideEvent{}
	}
	return events
}

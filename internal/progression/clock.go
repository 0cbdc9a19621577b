package progression

import (
	"fmt"
	"time"
)

// Clock isole le temps calendaire du reste du moteur : semaine ISO pour le
// rollover hebdomadaire, écart en jours calendaires pour les streaks
type Clock interface {
	Now() time.Time
	WeekTag(t time.Time) string
	DayGap(from, to time.Time) int
}

// SystemClock est l'horloge réelle, en UTC
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// WeekTag retourne l'identifiant de semaine ISO, ex: "2026-W35"
func (SystemClock) WeekTag(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// DayGap retourne le nombre de jours calendaires entre deux instants,
// indépendamment de l'heure (minuit à 23h59 le lendemain = 1 jour)
func (SystemClock) DayGap(from, to time.Time) int {
	f, t := from.UTC(), to.UTC()
	fd := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	td := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(td.Sub(fd).Hours() / 24)
}

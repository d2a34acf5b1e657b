// Package generator produces synthetic person-movement datasets for demos
// and load exercises. Journeys follow the real sensor shape: one warehouse
// entry, a sequence of zone entry/exit pairs carrying stay durations, one
// warehouse exit.
package generator

import (
	"sort"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/zonewatch-systems/zonewatch/internal/config"
	"github.com/zonewatch-systems/zonewatch/internal/models"
)

// Generator builds synthetic journeys against a configured facility.
type Generator struct {
	facility config.FacilityConfig
	catalog  map[string]config.Rule
	roster   []config.Person
	faker    *gofakeit.Faker
}

// New creates a generator seeded for reproducibility. Seed zero derives a
// seed from the current time.
func New(cfg *config.Config, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		facility: cfg.Facility,
		catalog:  cfg.Rules,
		roster:   cfg.Personnel,
		faker:    gofakeit.New(seed),
	}
}

// Dataset generates journeys for the whole roster, sorted by timestamp. The
// first roster entry always gets an after-hours journey so every demo
// dataset exercises the after-hours rule.
func (g *Generator) Dataset(zonesPerPerson int) []models.Event {
	if len(g.roster) == 0 {
		return nil
	}

	events := g.Journey(g.roster[0], 1, true)
	for _, person := range g.roster[1:] {
		events = append(events, g.Journey(person, zonesPerPerson, false)...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
	return events
}

// Journey generates one person's full journey from warehouse entry to exit,
// visiting up to zonesToVisit restricted zones.
func (g *Generator) Journey(person config.Person, zonesToVisit int, afterHours bool) []models.Event {
	day := time.Now()
	var hour int
	if afterHours {
		hour = g.faker.Number(18, 20)
	} else {
		hour = g.faker.Number(8, 17)
	}
	current := time.Date(day.Year(), day.Month(), day.Day(), hour, g.faker.Number(0, 59), 0, 0, time.Local)

	entrance := g.facility.EntranceZone
	journey := []models.Event{g.event(current, person, entrance, models.EventEnterWarehouse, true, false)}

	allowed := 5
	if rule, ok := g.catalog[string(models.ViolationLoitering)]; ok && rule.ThresholdMinutes > 0 {
		allowed = rule.ThresholdMinutes
	}

	for _, zone := range g.pickZones(zonesToVisit) {
		entry := g.wander(current)
		authorized := g.isAuthorized(person, zone)

		enter := g.event(entry, person, zone, models.EventPersonEntered, authorized, true)
		journey = append(journey, enter)

		duration := g.faker.Number(4, 10)
		exitTime := entry.Add(time.Duration(duration) * time.Minute)
		exit := g.event(exitTime, person, zone, models.EventPersonExited, authorized, true)
		exit.DurationMinutes = intPtr(duration)
		exit.AllowedMinutes = intPtr(allowed)
		journey = append(journey, exit)

		current = exitTime
	}

	current = g.wander(current)
	journey = append(journey, g.event(current, person, entrance, models.EventExitWarehouse, true, false))
	return journey
}

// Roster generates n synthetic personnel profiles with random zone
// authorizations, for datasets larger than the configured roster.
func (g *Generator) Roster(n int) []config.Person {
	zones := g.zoneNames()
	roster := make([]config.Person, 0, n)
	for i := 0; i < n; i++ {
		var authorized []string
		for _, zone := range zones {
			if g.faker.Bool() {
				authorized = append(authorized, zone)
			}
		}
		roster = append(roster, config.Person{
			ID:              g.faker.LetterN(1) + g.faker.DigitN(3),
			Name:            g.faker.FirstName(),
			AuthorizedZones: authorized,
		})
	}
	return roster
}

func (g *Generator) event(ts time.Time, person config.Person, zone string, eventType models.EventType, authorized, camera bool) models.Event {
	e := models.Event{
		Timestamp:  ts.Format(models.TimestampLayout),
		PersonID:   person.ID,
		PersonName: person.Name,
		Zone:       zone,
		EventType:  eventType,
		Authorized: authorized,
		Coords:     g.zoneCenter(zone),
	}
	if camera && len(g.facility.Cameras) > 0 {
		cam := g.facility.Cameras[g.faker.Number(0, len(g.facility.Cameras)-1)]
		e.CameraID = "C" + strconv.Itoa(cam.ID)
	}
	return e
}

// wander advances time by a short random walk between zones.
func (g *Generator) wander(t time.Time) time.Time {
	return t.Add(time.Duration(g.faker.Number(1, 5))*time.Minute +
		time.Duration(g.faker.Number(0, 59))*time.Second)
}

func (g *Generator) pickZones(n int) []string {
	available := g.zoneNames()
	g.faker.ShuffleStrings(available)
	if n > len(available) {
		n = len(available)
	}
	if n < 0 {
		n = 0
	}
	return available[:n]
}

// zoneNames lists restricted zones excluding the entrance.
func (g *Generator) zoneNames() []string {
	var names []string
	for _, area := range g.facility.RestrictedAreas {
		if area.Name != g.facility.EntranceZone {
			names = append(names, area.Name)
		}
	}
	return names
}

func (g *Generator) isAuthorized(person config.Person, zone string) bool {
	for _, authorized := range person.AuthorizedZones {
		if authorized == zone {
			return true
		}
	}
	return false
}

func (g *Generator) zoneCenter(zone string) *models.Coords {
	for _, area := range g.facility.RestrictedAreas {
		if area.Name == zone {
			return &models.Coords{
				Row: (area.TopRow + area.BottomRow) / 2,
				Col: (area.LeftCol + area.RightCol) / 2,
			}
		}
	}
	return nil
}

func intPtr(v int) *int { return &v }

package importer

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/jamespfennell/gtfs"
)

const maxNameLength = 200

// feedStop is a stop ready to be stored, keyed by its id in the feed.
type feedStop struct {
	feedID string
	stop   models.Stop
}

// feedLine is a route ready to be stored with the feed ids of the stops it visits.
type feedLine struct {
	feedID  string
	name    string
	stopIDs []string
}

// convertStops keeps every feed stop that has coordinates, returning how many were skipped.
func convertStops(static *gtfs.Static) ([]feedStop, int) {
	stops := make([]feedStop, 0, len(static.Stops))
	skipped := 0

	for _, s := range static.Stops {
		if s.Latitude == nil || s.Longitude == nil {
			skipped++
			continue
		}

		stops = append(stops, feedStop{
			feedID: s.Id,
			stop: models.Stop{
				Name:      truncate(firstNonBlank(s.Name, s.Code, s.Id)),
				Latitude:  *s.Latitude,
				Longitude: *s.Longitude,
			},
		})
	}

	return stops, skipped
}

// convertLines builds one line per route. Its stops are the union of the stops visited
// by the route's trips, in the order they are first seen.
func convertLines(static *gtfs.Static) []feedLine {
	visited := make(map[string][]string, len(static.Routes))
	seen := make(map[string]map[string]bool, len(static.Routes))

	for _, trip := range static.Trips {
		if trip.Route == nil {
			continue
		}
		routeID := trip.Route.Id
		if seen[routeID] == nil {
			seen[routeID] = map[string]bool{}
		}

		stopTimes := slices.Clone(trip.StopTimes)
		slices.SortStableFunc(stopTimes, func(a, b gtfs.ScheduledStopTime) int {
			return a.StopSequence - b.StopSequence
		})

		for _, st := range stopTimes {
			if st.Stop == nil || seen[routeID][st.Stop.Id] {
				continue
			}
			seen[routeID][st.Stop.Id] = true
			visited[routeID] = append(visited[routeID], st.Stop.Id)
		}
	}

	lines := make([]feedLine, 0, len(static.Routes))
	for _, route := range static.Routes {
		lines = append(lines, feedLine{
			feedID:  route.Id,
			name:    truncate(routeName(route)),
			stopIDs: visited[route.Id],
		})
	}

	return lines
}

// routeName prefers "<short> - <long>", then whichever name exists, then the id.
func routeName(route gtfs.Route) string {
	short, long := strings.TrimSpace(route.ShortName), strings.TrimSpace(route.LongName)
	if short != "" && long != "" {
		return short + " - " + long
	}
	return firstNonBlank(short, long, route.Id)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func truncate(name string) string {
	if utf8.RuneCountInString(name) <= maxNameLength {
		return name
	}
	return string([]rune(name)[:maxNameLength])
}

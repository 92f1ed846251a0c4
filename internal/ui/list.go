package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/dkarlsson/radiodeck/internal/models"
)

var _ list.Item = stationItem{}

// stationItem wraps [models.Station] to implement [list.Item].
type stationItem struct {
	station models.Station
}

func (i stationItem) FilterValue() string { return i.station.Name }
func (i stationItem) Title() string       { return i.station.Name }
func (i stationItem) Description() string {
	return fmt.Sprintf("#%d • %s", i.station.ID, i.station.URL)
}

// stationItems rebuilds the full item slice from a station list.
//
// Feeding the same list twice yields identical items; the displayed list is a
// pure function of the last fetch.
func stationItems(stations []models.Station) []list.Item {
	items := make([]list.Item, len(stations))
	for i, st := range stations {
		items[i] = stationItem{station: st}
	}
	return items
}

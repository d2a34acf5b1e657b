// Package layout renders the static facility grid used by the dashboard:
// cell codes for walkways, restricted zones, safe areas, cameras and the
// entrance, plus text labels positioned at zone centers.
package layout

import (
	"strconv"

	"github.com/zonewatch-systems/zonewatch/internal/config"
)

// Cell codes.
const (
	CellWalkway    = 0
	CellRestricted = 1
	CellSafe       = 2
	CellCamera     = 3
	CellEntrance   = 4
)

// Label is a piece of text positioned on the grid. Coordinates are
// fractional: zone labels sit at area centers.
type Label struct {
	Text string  `json:"text"`
	Y    float64 `json:"y"`
	X    float64 `json:"x"`
}

// Grid is the rendered facility layout.
type Grid struct {
	Cells  [][]int `json:"cells"`
	Labels []Label `json:"labels"`
}

// Build renders the facility configuration into a grid. Later sections paint
// over earlier ones: restricted areas, then safe areas, then cameras.
func Build(facility config.FacilityConfig) Grid {
	cells := make([][]int, facility.Rows)
	for r := range cells {
		cells[r] = make([]int, facility.Cols)
	}

	var labels []Label

	for _, area := range facility.RestrictedAreas {
		code := CellRestricted
		if area.Name == facility.EntranceZone {
			code = CellEntrance
		}
		paint(cells, area, code)
		labels = append(labels, Label{
			Text: area.Name,
			Y:    float64(area.TopRow+area.BottomRow+1) / 2,
			X:    float64(area.LeftCol+area.RightCol+1) / 2,
		})
	}

	for _, area := range facility.SafeAreas {
		paint(cells, area, CellSafe)
	}

	for _, cam := range facility.Cameras {
		if cam.Row >= 0 && cam.Row < facility.Rows && cam.Col >= 0 && cam.Col < facility.Cols {
			cells[cam.Row][cam.Col] = CellCamera
			labels = append(labels, Label{
				Text: strconv.Itoa(cam.ID),
				Y:    float64(cam.Row),
				X:    float64(cam.Col),
			})
		}
	}

	return Grid{Cells: cells, Labels: labels}
}

// paint fills a rectangular area, both corners inclusive, clamped to the
// grid.
func paint(cells [][]int, area config.Area, code int) {
	for r := area.TopRow; r <= area.BottomRow && r < len(cells); r++ {
		if r < 0 {
			continue
		}
		for c := area.LeftCol; c <= area.RightCol && c < len(cells[r]); c++ {
			if c < 0 {
				continue
			}
			cells[r][c] = code
		}
	}
}

// Package render derives the result panel from a path result. It holds no state.
package render

import (
	"strconv"
	"strings"

	"github.com/you/pathfinder/models"
)

// Stop tags
const (
	TagStart = "START"
	TagEnd   = "END"
)

// Stop is one city on the rendered route
type Stop struct {
	Number  int      `json:"number"`
	Name    string   `json:"name"`
	Tags    []string `json:"tags,omitempty"`
	IsStart bool     `json:"isStart"`
	IsEnd   bool     `json:"isEnd"`
}

// Label is the positional caption shown next to the stop
func (s Stop) Label() string {
	return "Stop " + strconv.Itoa(s.Number)
}

// ResultView is the result panel
type ResultView struct {
	Source          string `json:"source"`
	Destination     string `json:"destination"`
	Distance        string `json:"distance"`
	StopCount       int    `json:"stopCount"`
	ConnectionCount int    `json:"connectionCount"`
	Stops           []Stop `json:"stops"`
	Summary         string `json:"summary"`
}

// NewResultView builds the panel for result. Source and destination are the
// current selection, used for the heading only. Returns nil without a result.
func NewResultView(result *models.PathResult, source, destination string) *ResultView {
	if result == nil {
		return nil
	}

	v := &ResultView{
		Source:          source,
		Destination:     destination,
		Distance:        FormatDistance(result.Distance),
		StopCount:       result.StopCount(),
		ConnectionCount: result.ConnectionCount(),
		Stops:           make([]Stop, 0, len(result.Path)),
		Summary:         RouteSummary(result.Path),
	}

	last := len(result.Path) - 1
	for i, name := range result.Path {
		stop := Stop{
			Number:  i + 1,
			Name:    name,
			IsStart: i == 0,
			IsEnd:   i == last,
		}
		if stop.IsStart {
			stop.Tags = append(stop.Tags, TagStart)
		}
		if stop.IsEnd {
			stop.Tags = append(stop.Tags, TagEnd)
		}
		v.Stops = append(v.Stops, stop)
	}

	return v
}

// FormatDistance prints the distance exactly as the service returned it,
// without rounding or unit conversion
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// RouteSummary joins the stops with arrows, e.g. "A → B → C"
func RouteSummary(path []string) string {
	return strings.Join(path, " → ")
}

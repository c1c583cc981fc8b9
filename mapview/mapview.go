// Package mapview builds the interactive map: one marker per catalog city
// with a known coordinate, styled by its role in the current selection and
// route, plus the route polyline and the bounds that enclose every marker.
package mapview

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/you/pathfinder/catalog"
	"github.com/you/pathfinder/models"
	"github.com/you/pathfinder/render"
)

// Role decides a marker's emphasis. Precedence: source and destination,
// then route members, then everything else.
type Role string

const (
	RoleSource      Role = "source"
	RoleDestination Role = "destination"
	RolePath        Role = "path"
	RoleCity        Role = "city"
)

// Style is the visual treatment of a marker
type Style struct {
	Color  string `json:"color"`
	Size   int    `json:"size"` // px
	ZIndex int    `json:"zIndex"`
	Label  string `json:"label"`
}

var styles = map[Role]Style{
	RoleSource:      {Color: "#10B981", Size: 35, ZIndex: 1000, Label: "Source City"},
	RoleDestination: {Color: "#EF4444", Size: 35, ZIndex: 1000, Label: "Destination City"},
	RolePath:        {Color: "#3B82F6", Size: 25, ZIndex: 500, Label: "On Route"},
	RoleCity:        {Color: "#6B7280", Size: 20, ZIndex: 1, Label: "City"},
}

// StyleFor returns the style used for role
func StyleFor(role Role) Style {
	return styles[role]
}

// Route line style
const (
	RouteColor     = "#3B82F6"
	RouteWeight    = 4
	RouteOpacity   = 0.8
	RouteDashArray = "10, 5"
)

// FitPadding is the pixel padding applied when fitting the view to the bounds
const FitPadding = 20

// Marker is one plotted city
type Marker struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Role     Role    `json:"role"`
	Position string  `json:"position"`
	Style
}

// Bounds is the south-west / north-east box enclosing all markers
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// View is the complete map state
type View struct {
	Center     models.Coordinate   `json:"center"`
	Zoom       int                 `json:"zoom"`
	Markers    []Marker            `json:"markers"`
	Route      []models.Coordinate `json:"route,omitempty"`
	Bounds     *Bounds             `json:"bounds,omitempty"`
	FitPadding int                 `json:"fitPadding"` // px, applied when fitting to Bounds
	Summary    string              `json:"summary,omitempty"`
}

// Build lays out the map for the current selection and optional route.
// Cities without a coordinate are left out; they stay selectable elsewhere.
func Build(cat *catalog.Catalog, source, destination string, path []string) View {
	v := View{
		Center:     catalog.DefaultCenter,
		Zoom:       catalog.DefaultZoom,
		FitPadding: FitPadding,
	}

	onRoute := make(map[string]struct{}, len(path))
	for _, name := range path {
		onRoute[name] = struct{}{}
	}

	var points orb.MultiPoint
	for _, name := range cat.Names() {
		coord, ok := cat.Coordinate(name)
		if !ok {
			continue
		}

		role := roleOf(name, source, destination, onRoute)
		v.Markers = append(v.Markers, Marker{
			Name:     name,
			Lat:      coord.Lat,
			Lng:      coord.Lng,
			Role:     role,
			Position: fmt.Sprintf("%.4f, %.4f", coord.Lat, coord.Lng),
			Style:    styles[role],
		})
		points = append(points, orb.Point{coord.Lng, coord.Lat})
	}

	if len(points) > 0 {
		b := points.Bound()
		v.Bounds = &Bounds{South: b.Min.Lat(), West: b.Min.Lon(), North: b.Max.Lat(), East: b.Max.Lon()}
	}

	var route []models.Coordinate
	for _, name := range path {
		if coord, ok := cat.Coordinate(name); ok {
			route = append(route, coord)
		}
	}
	if len(route) > 1 {
		v.Route = route
	}

	if len(path) > 0 {
		v.Summary = render.RouteSummary(path)
	}

	return v
}

func roleOf(name, source, destination string, onRoute map[string]struct{}) Role {
	switch {
	case name == source:
		return RoleSource
	case name == destination:
		return RoleDestination
	}
	if _, ok := onRoute[name]; ok {
		return RolePath
	}
	return RoleCity
}

// FeatureCollection encodes the markers as Point features and the route as
// a LineString feature, for the browser map script
func (v View) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, m := range v.Markers {
		f := geojson.NewFeature(orb.Point{m.Lng, m.Lat})
		f.Properties["name"] = m.Name
		f.Properties["role"] = string(m.Role)
		f.Properties["color"] = m.Color
		f.Properties["size"] = m.Size
		f.Properties["zIndex"] = m.ZIndex
		f.Properties["label"] = m.Label
		f.Properties["position"] = m.Position
		fc.Append(f)
	}

	if len(v.Route) > 1 {
		line := make(orb.LineString, 0, len(v.Route))
		for _, c := range v.Route {
			line = append(line, orb.Point{c.Lng, c.Lat})
		}
		f := geojson.NewFeature(line)
		f.Properties["kind"] = "route"
		f.Properties["color"] = RouteColor
		f.Properties["weight"] = RouteWeight
		f.Properties["opacity"] = RouteOpacity
		f.Properties["dashArray"] = RouteDashArray
		fc.Append(f)
	}

	if v.Bounds != nil {
		fc.BBox = geojson.BBox{v.Bounds.West, v.Bounds.South, v.Bounds.East, v.Bounds.North}
	}

	return fc
}

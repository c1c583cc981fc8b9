package models

// PathRequest is the JSON body sent to the path-finding service
type PathRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// PathResult is the route returned by the path-finding service.
// Path[0] is the source and Path[len(Path)-1] the destination; the
// service is trusted for contiguity.
type PathResult struct {
	Path     []string `json:"path"`
	Distance float64  `json:"distance"`
}

// StopCount returns the number of cities on the route
func (p *PathResult) StopCount() int {
	return len(p.Path)
}

// ConnectionCount returns the number of legs between consecutive stops
func (p *PathResult) ConnectionCount() int {
	if len(p.Path) == 0 {
		return 0
	}
	return len(p.Path) - 1
}

// PathError is the error body returned by the path-finding service on non-success statuses
type PathError struct {
	Error string `json:"error"`
}

package selector

import "fmt"

// Dropdown is the interaction state of one city selector. The selected value
// is owned by the caller and reported through onChange. Not safe for
// concurrent use; the owning session serializes access.
type Dropdown struct {
	placeholder string
	onChange    func(city string)

	open  bool
	query string
}

// View is everything needed to draw a selector
type View struct {
	Label       string   `json:"label"`
	HasValue    bool     `json:"hasValue"`
	Open        bool     `json:"open"`
	Query       string   `json:"query"`
	FocusSearch bool     `json:"focusSearch"`
	Options     []string `json:"options,omitempty"`
	NoMatch     string   `json:"noMatch,omitempty"`
}

// NewDropdown creates a closed selector. onChange receives the chosen city.
func NewDropdown(placeholder string, onChange func(city string)) *Dropdown {
	return &Dropdown{placeholder: placeholder, onChange: onChange}
}

// Toggle opens a closed list or closes an open one, resetting the search
func (d *Dropdown) Toggle() {
	d.open = !d.open
	d.query = ""
}

// Search updates the live query, opening the list if needed
func (d *Dropdown) Search(query string) {
	d.open = true
	d.query = query
}

// Select reports city to the owner and closes the list
func (d *Dropdown) Select(city string) {
	if d.onChange != nil {
		d.onChange(city)
	}
	d.open = false
	d.query = ""
}

// ClickOutside closes the list without changing the value
func (d *Dropdown) ClickOutside() {
	d.open = false
	d.query = ""
}

// IsOpen reports whether the option list is shown
func (d *Dropdown) IsOpen() bool {
	return d.open
}

// Query returns the current search string
func (d *Dropdown) Query() string {
	return d.query
}

// View renders the selector for the given candidates and current value
func (d *Dropdown) View(candidates []string, value string) View {
	v := View{
		Label:    value,
		HasValue: value != "",
		Open:     d.open,
		Query:    d.query,
	}
	if value == "" {
		v.Label = d.placeholder
	}

	if !d.open {
		return v
	}

	v.FocusSearch = true
	v.Options = Filter(candidates, d.query)
	if len(v.Options) == 0 {
		v.NoMatch = NoMatchMessage(d.query)
	}
	return v
}

// NoMatchMessage is the placeholder shown when the query matches nothing
func NoMatchMessage(query string) string {
	return fmt.Sprintf(`No cities found matching "%s"`, query)
}

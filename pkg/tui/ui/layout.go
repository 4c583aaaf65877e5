package ui

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Zone classifies a hit.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneTray
	ZoneTrash
	ZoneDay
	ZoneBlank
)

// Hit is what lies under a point. Index is the tray position for ZoneTray;
// Slot is the note row inside a day cell, or -1.
type Hit struct {
	Zone  Zone
	Index int
	Day   int
	Slot  int
}

// Region binds a rectangle to what it shows.
type Region struct {
	Rect
	Hit Hit
}

// Layout records where rendered targets ended up. Later regions win.
type Layout struct {
	Regions []Region
}

// Add appends a region.
func (l *Layout) Add(r Rect, h Hit) {
	l.Regions = append(l.Regions, Region{Rect: r, Hit: h})
}

// Merge appends other shifted by (dx, dy).
func (l *Layout) Merge(other Layout, dx, dy int) {
	for _, r := range other.Regions {
		r.X += dx
		r.Y += dy
		l.Regions = append(l.Regions, r)
	}
}

// At returns the topmost hit at (x, y).
func (l Layout) At(x, y int) Hit {
	for i := len(l.Regions) - 1; i >= 0; i-- {
		if l.Regions[i].Contains(x, y) {
			return l.Regions[i].Hit
		}
	}
	return Hit{Zone: ZoneNone, Slot: -1}
}

// Find returns the first region matching h's zone, index and day.
func (l Layout) Find(zone Zone, index, day int) (Rect, bool) {
	for _, r := range l.Regions {
		if r.Hit.Zone == zone && r.Hit.Index == index && r.Hit.Day == day {
			return r.Rect, true
		}
	}
	return Rect{}, false
}

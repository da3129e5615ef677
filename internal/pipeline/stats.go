package pipeline

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Dirs        int // directories holding images
	SkippedDirs int // excluded for layout or unknown model
	Images      int // images in planned directories
	Unchanged   int // already canonical
	Planned     int
	Renamed     int
}

// Pending returns the number of planned renames that were not performed
// (all of them on a dry run).
func (s *RunStats) Pending() int {
	return s.Planned - s.Renamed
}

package model

// Outcome is the per-file result of a migration run.
type Outcome string

const (
	// OutcomeUpdated means the file was rewritten in place.
	OutcomeUpdated Outcome = "updated"
	// OutcomePending means the file would be rewritten but the run is a dry run.
	OutcomePending Outcome = "pending"
	// OutcomeUnchanged means every step was already applied or had no anchor.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeMissing means the path does not exist.
	OutcomeMissing Outcome = "missing"
	// OutcomeExcluded means an exclude rule matched the path.
	OutcomeExcluded Outcome = "excluded"
	// OutcomeDirty means the file has uncommitted changes and the run
	// requires a clean worktree.
	OutcomeDirty Outcome = "dirty"
)

// Outcomes lists every outcome in display order.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeUpdated,
		OutcomePending,
		OutcomeUnchanged,
		OutcomeMissing,
		OutcomeExcluded,
		OutcomeDirty,
	}
}

// FileReport is emitted once per target file.
type FileReport struct {
	Path    Path
	Outcome Outcome
	Diff    string // unified patch text, set only when diffs were requested
}

// Summary tallies the outcomes of a run and keeps the reports in the order
// they were added.
type Summary struct {
	Files  []FileReport
	Counts map[Outcome]int
	Total  int
}

// NewSummary creates an empty Summary.
func NewSummary() Summary {
	return Summary{Counts: make(map[Outcome]int)}
}

// Add records one file report.
func (s *Summary) Add(report FileReport) {
	if s.Counts == nil {
		s.Counts = make(map[Outcome]int)
	}

	s.Files = append(s.Files, report)
	s.Counts[report.Outcome]++
	s.Total++
}

// Updated returns the number of files rewritten in place.
func (s Summary) Updated() int {
	return s.Counts[OutcomeUpdated]
}

// Pending returns the number of files a dry run would rewrite.
func (s Summary) Pending() int {
	return s.Counts[OutcomePending]
}

// RunReport is the persisted record of one run.
type RunReport struct {
	RunID   string
	DryRun  bool
	Summary Summary
}

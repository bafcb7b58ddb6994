// Package pipeline sequences a processing run against the backend and
// reports stage and progress to the presentation layer.
package pipeline

// Stage is the position of a run in the linear state machine.
type Stage int

const (
	Idle Stage = iota
	Uploading
	Preprocessing
	Segmenting
	Reconstructing
	Finalizing
	Complete
	Failed
)

func (s Stage) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Uploading:
		return "Uploading"
	case Preprocessing:
		return "Preprocessing"
	case Segmenting:
		return "Segmenting"
	case Reconstructing:
		return "Reconstructing"
	case Finalizing:
		return "Finalizing"
	case Complete:
		return "Complete"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Active reports whether the stage belongs to a run in flight. Idle,
// Complete, and Failed all accept a new start request.
func (s Stage) Active() bool {
	switch s {
	case Idle, Complete, Failed:
		return false
	default:
		return true
	}
}

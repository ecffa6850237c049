package reset

import "github.com/furilabs/furios-reset/pkg/errors"

// Request is the FSM input
type Request struct {
	RunID      string
	SlotSuffix string
}

// Response is the FSM output (accumulated across transitions)
type Response struct {
	RunID string

	// From ProbingTopology
	SuperDetected bool
	SlotDevice    string
	SystemMount   string

	// From CheckingEncryption / AwaitingPassword
	Encryption string

	// From LocatingImages
	UserdataArchive string
	BootImage       string
	DtboImage       string

	// From Flashing
	Warnings []string

	// From Finalizing
	Status string
}

// Status values a run ends with
const (
	StatusSuccess       = "success"
	StatusFailure       = "failure"
	StatusLockedOut     = "locked_out"
	StatusNeedsPassword = "needs_password"
)

// Reason values for runs that did not succeed
const (
	ReasonTopology    = "topology"
	ReasonEncryption  = "encryption"
	ReasonExtraction  = "extraction"
	ReasonInternal    = "internal"
	ReasonInterrupted = "interrupted"
)

// State names
const (
	StateProbingTopology    = "probing_topology"
	StateCheckingEncryption = "checking_encryption"
	StateAwaitingPassword   = "awaiting_password"
	StateLocatingImages     = "locating_images"
	StateFlashing           = "flashing"
	StateFinalizing         = "finalizing"
	StateFailed             = "failed"
)

// ErrPasswordRequired reports that the volume is locked and no passphrase
// could be obtained.
var ErrPasswordRequired = errors.New("password required to proceed")

// Outcome is the single verdict of a run.
type Outcome struct {
	Status            string
	Reason            string
	AttemptsRemaining int
	Warnings          []string
}

// Message returns the user-facing verdict line.
func (o *Outcome) Message() string {
	switch o.Status {
	case StatusSuccess:
		return "Successfully reset to factory settings"
	case StatusLockedOut:
		return "Maximum password attempt reached."
	case StatusNeedsPassword:
		return "Password required for factory reset"
	default:
		return "Failed to factory reset"
	}
}

// ExitCode maps the verdict onto the process exit status.
func (o *Outcome) ExitCode() int {
	switch o.Status {
	case StatusSuccess:
		return 0
	case StatusLockedOut:
		return 2
	case StatusNeedsPassword:
		return 3
	default:
		return 1
	}
}

package download

import (
	"fmt"
	"os"
)

// Decision is the outcome of the existence check.
type Decision int

const (
	// Proceed means the file should be downloaded and written.
	Proceed Decision = iota
	// Skip means a nonempty file is already in place.
	Skip
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Check decides whether t should be (re)downloaded. force overrides an
// existing nonempty file but never an existing directory. Empty files are
// treated as absent.
func Check(t Target, force bool) (Decision, error) {
	info, err := os.Stat(t.Path)
	if err != nil {
		// Missing, or unreadable for some other reason. Writing will report
		// the real problem.
		return Proceed, nil
	}

	if info.IsDir() {
		return Proceed, fmt.Errorf("%w: OUTFILE is %q, which is a directory", ErrTargetIsDirectory, t.Path)
	}
	if force || info.Size() == 0 {
		return Proceed, nil
	}
	return Skip, nil
}

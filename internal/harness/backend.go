package harness

import "fmt"

// Backend selects a result-sink implementation. The set is closed: backend
// choice is resolved here at load time, never by name downstream.
type Backend int

const (
	// BackendCSV writes one file per identifier under the results dir.
	BackendCSV Backend = iota
	// BackendBolt appends to a single store shared by concurrent processes.
	BackendBolt
	// BackendTerm prints progress lines only; nothing is persisted.
	BackendTerm
)

// ParseBackend maps a config string to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "csv":
		return BackendCSV, nil
	case "bolt":
		return BackendBolt, nil
	case "term":
		return BackendTerm, nil
	default:
		return 0, fmt.Errorf("unsupported backend: %s", s)
	}
}

func (b Backend) String() string {
	switch b {
	case BackendCSV:
		return "csv"
	case BackendBolt:
		return "bolt"
	case BackendTerm:
		return "term"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

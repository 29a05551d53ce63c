package httpq

// State reflects how much of an HTTP message the accumulated buffer
// describes.
type State uint8

const (
	// StateTop: no complete start line arrived yet.
	StateTop State = iota
	// StateHeader: the start line is complete, the header block is still open.
	StateHeader
	// StateBody: the header block is terminated; any further bytes are body
	// content.
	StateBody
	// StateInvalid: the start line failed to parse. Terminal.
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateTop:
		return "top"
	case StateHeader:
		return "header"
	case StateBody:
		return "body"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

package httpq

import (
	"bytes"
	"strings"

	"github.com/httpq-dev/httpq/headers"
	"github.com/httpq-dev/httpq/item"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

var (
	crlf           = []byte("\r\n")
	headTerminator = []byte("\r\n\r\n")
)

// topLine is the kind-specific part of a message: request and response start
// lines carry the same three tokens with different meanings.
type topLine interface {
	parseTop(tokens [3]item.Item)
	compileTop() []byte
}

// message is the shared core of Request and Response: the accumulation
// buffer plus the structured fields derived from it.
type message struct {
	top     topLine
	buffer  []byte
	invalid bool
	err     error

	Protocol item.Item
	Headers  *headers.Headers
	Body     item.Item
}

func newMessage(top topLine) message {
	return message{top: top, Headers: headers.New()}
}

// Feed appends raw bytes to the accumulation buffer and reports the
// resulting state. It never blocks and never refuses data; framing is
// re-derived from the buffer alone.
func (m *message) Feed(data []byte) State {
	m.buffer = append(m.buffer, data...)
	return m.State()
}

// State re-derives the parse state from the whole buffer. The scan restarts
// from the beginning on every call, so the derived fields always agree with
// the complete buffer no matter how the bytes were chunked on arrival. Head
// blocks are small in practice, which keeps the repeated work negligible.
func (m *message) State() State {
	if m.invalid {
		return StateInvalid
	}

	head, body, terminated := bytes.Cut(m.buffer, headTerminator)
	if !terminated {
		if bytes.Contains(m.buffer, crlf) {
			return StateHeader
		}

		return StateTop
	}

	lines := bytes.Split(head, crlf)
	if err := m.parseStartLine(lines[0]); err != nil {
		m.invalid = true
		m.err = err
		return StateInvalid
	}

	// Headers are rebuilt from scratch on each scan. Accumulating into the
	// previous ones would duplicate values on repeated calls.
	hdrs := headers.New()

	for _, line := range lines[1:] {
		key, value, found := bytes.Cut(line, []byte{':'})
		if !found {
			break
		}

		// both items are freshly converted scalars, Add cannot fail
		_ = hdrs.Add(key, bytes.TrimSpace(value))
	}

	m.Headers = hdrs
	m.Body = item.Bytes(body)

	return StateBody
}

func (m *message) parseStartLine(line []byte) error {
	tokens := bytes.SplitN(line, []byte{' '}, 3)
	if len(tokens) != 3 {
		return ErrMalformedStartLine
	}

	m.top.parseTop([3]item.Item{
		item.Bytes(tokens[0]),
		item.Bytes(tokens[1]),
		item.Bytes(tokens[2]),
	})

	return nil
}

// Err returns the wire-level error behind StateInvalid, nil otherwise.
func (m *message) Err() error {
	return m.err
}

// Compile serializes the message back into wire form: start line, header
// block, body. For a message populated from a well-formed buffer, the output
// is byte-identical to that buffer.
func (m *message) Compile() []byte {
	bfr := m.top.compileTop()
	bfr = append(bfr, m.Headers.Compile()...)
	return append(bfr, m.Body.Raw()...)
}

// Raw is an alias for Compile.
func (m *message) Raw() []byte {
	return m.Compile()
}

// JSON decodes the message body into model. The message must carry a JSON
// Content-Type (folded lookup, so "content_type" works too) and a body,
// otherwise ErrNoJSONBody is returned.
func (m *message) JSON(model any) error {
	contentType := strings.ToLower(m.Headers.Value("Content-Type"))
	if !strings.Contains(contentType, "application/json") || !m.Body.Defined() {
		return ErrNoJSONBody
	}

	iterator := json.ConfigDefault.BorrowIterator(m.Body.Raw())
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}

// render produces the human-readable form: every physical line of the
// compiled message prefixed with a direction marker. Purely cosmetic, not
// part of the wire contract.
func (m *message) render(arrow string) string {
	if m.invalid {
		return "Invalid Message"
	}

	compiled := strings.TrimRight(uf.B2S(m.Compile()), "\r\n")

	return arrow + strings.Join(strings.SplitAfter(compiled, "\r\n"), arrow)
}

// identity validates the all-or-nothing start line trio. populated is true
// when all three fields are usable; an unset trio is legal and reports
// populated=false.
func identity(a, b, c any) (fields [3]item.Item, populated bool, err error) {
	var unset, usable int

	for i, v := range []any{a, b, c} {
		it, convErr := item.New(v)
		if convErr != nil {
			return fields, false, convErr
		}

		switch {
		case !it.Defined():
			unset++
		case it.String() != "":
			usable++
		}

		fields[i] = it
	}

	switch {
	case unset == 3:
		return fields, false, nil
	case usable == 3:
		return fields, true, nil
	default:
		return fields, false, ErrIncompleteIdentity
	}
}

// seed pre-fills the buffer of a composed message so that incremental
// parsing and composition stay two views of the same bytes: the compiled
// start line, then the header block once headers are given, then the body.
func (m *message) seed(startLine []byte, hdrs *headers.Headers, body item.Item) {
	m.buffer = startLine

	if !hdrs.Empty() {
		m.Headers = hdrs
		m.buffer = append(m.buffer, hdrs.Compile()...)
	}

	if body.Defined() && body.String() != "" {
		m.Body = body
		m.buffer = append(m.buffer, body.Raw()...)
	}
}

package httpq

import (
	"github.com/httpq-dev/httpq/headers"
	"github.com/httpq-dev/httpq/item"
)

// Response is an incrementally parseable HTTP/1.1 response message.
type Response struct {
	Status item.Item
	Reason item.Item
	message
}

// NewResponse returns an empty response awaiting data.
func NewResponse() *Response {
	r := new(Response)
	r.message = newMessage(r)

	return r
}

// ComposeResponse builds a response from explicit field values under the
// same all-or-nothing identity contract as ComposeRequest: protocol, status
// and reason together or not at all. Status is typically given as a plain
// integer.
func ComposeResponse(protocol, status, reason, hdrs, body any) (*Response, error) {
	r := NewResponse()

	fields, populated, err := identity(protocol, status, reason)
	if err != nil {
		return nil, err
	}

	h, err := headers.From(hdrs)
	if err != nil {
		return nil, err
	}

	b, err := item.New(body)
	if err != nil {
		return nil, err
	}

	var startLine []byte
	if populated {
		r.Protocol, r.Status, r.Reason = fields[0], fields[1], fields[2]
		startLine = r.compileTop()
	}

	r.seed(startLine, h, b)

	return r, nil
}

// ParseResponse parses an already-complete buffer in one shot, returning the
// response advanced to its resulting state.
func ParseResponse(data []byte) *Response {
	r := NewResponse()
	r.Feed(data)

	return r
}

func (r *Response) parseTop(tokens [3]item.Item) {
	r.Protocol, r.Status, r.Reason = tokens[0], tokens[1], tokens[2]
}

func (r *Response) compileTop() []byte {
	bfr := append([]byte(nil), r.Protocol.Raw()...)
	bfr = append(bfr, ' ')
	bfr = append(bfr, r.Status.Raw()...)
	bfr = append(bfr, ' ')
	bfr = append(bfr, r.Reason.Raw()...)

	return append(bfr, '\r', '\n')
}

func (r *Response) String() string {
	return r.render("← ")
}

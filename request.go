package httpq

import (
	"github.com/httpq-dev/httpq/headers"
	"github.com/httpq-dev/httpq/item"
)

// Request is an incrementally parseable HTTP/1.1 request message.
type Request struct {
	Method item.Item
	Target item.Item
	message
}

// NewRequest returns an empty request awaiting data.
func NewRequest() *Request {
	r := new(Request)
	r.message = newMessage(r)

	return r
}

// ComposeRequest builds a request from explicit field values. The identity
// trio obeys an all-or-nothing contract: passing nil for all of method,
// target and protocol yields an empty request, while a partial subset fails
// with ErrIncompleteIdentity. Scalar arguments accept anything the item
// model does, and hdrs anything headers.From does.
func ComposeRequest(method, target, protocol, hdrs, body any) (*Request, error) {
	r := NewRequest()

	fields, populated, err := identity(method, target, protocol)
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
		r.Method, r.Target, r.Protocol = fields[0], fields[1], fields[2]
		startLine = r.compileTop()
	}

	r.seed(startLine, h, b)

	return r, nil
}

// ParseRequest parses an already-complete buffer in one shot, returning the
// request advanced to its resulting state.
func ParseRequest(data []byte) *Request {
	r := NewRequest()
	r.Feed(data)

	return r
}

func (r *Request) parseTop(tokens [3]item.Item) {
	r.Method, r.Target, r.Protocol = tokens[0], tokens[1], tokens[2]
}

func (r *Request) compileTop() []byte {
	bfr := append([]byte(nil), r.Method.Raw()...)
	bfr = append(bfr, ' ')
	bfr = append(bfr, r.Target.Raw()...)
	bfr = append(bfr, ' ')
	bfr = append(bfr, r.Protocol.Raw()...)

	return append(bfr, '\r', '\n')
}

func (r *Request) String() string {
	return r.render("→ ")
}

// Package httpq is an incremental, byte-level parser and serializer for
// HTTP/1.1 request and response messages.
//
// A message owns an accumulation buffer. The caller appends raw bytes as
// they arrive with Feed and inspects the reported State to decide whether to
// keep reading or hand the message over:
//
//	req := httpq.NewRequest()
//	req.Feed([]byte("GET /get HTTP/1.1\r\n"))      // StateHeader
//	req.Feed([]byte("Host: httpbin.org\r\n\r\n"))  // StateBody
//	req.Feed([]byte("Hello world!"))               // still StateBody
//
// Once the header block terminator is seen, the start line, headers and body
// are populated and the message can be re-serialized with Compile. The
// package performs no I/O and enforces no limits or timeouts: transport
// concerns, including chunked transfer decoding and connection management,
// belong to the caller.
package httpq

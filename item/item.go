// Package item provides a uniform scalar wrapper for message field and
// header content. Values entered as byte slices, strings, integers or
// booleans all normalize into the same wire (byte) form, so Int(200),
// String("200") and Bytes([]byte("200")) are interchangeable.
package item

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/indigo-web/utils/uf"
)

// ErrTypeConversion is returned when a value of an unsupported kind is
// normalized into an Item.
var ErrTypeConversion = errors.New("unsupported item kind")

// Item is an immutable scalar holding the wire form of a single value. The
// zero Item is unset, which is distinct from an Item holding empty bytes.
type Item struct {
	payload string
	defined bool
}

// New normalizes v into an Item. Supported kinds are byte slices, strings,
// integers of any width, booleans and Item itself; nil yields an unset Item,
// anything else fails with ErrTypeConversion.
func New(v any) (Item, error) {
	switch value := v.(type) {
	case nil:
		return Item{}, nil
	case Item:
		return value, nil
	case []byte:
		return Bytes(value), nil
	case string:
		return String(value), nil
	case int:
		return Int(value), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return String(fmt.Sprintf("%d", value)), nil
	case bool:
		return Bool(value), nil
	}

	return Item{}, fmt.Errorf("%w: %T", ErrTypeConversion, v)
}

// Bytes wraps a byte slice. The bytes are copied, so later modifications of
// the source don't leak into the item.
func Bytes(b []byte) Item {
	return Item{payload: string(b), defined: true}
}

// String wraps a string as-is.
func String(s string) Item {
	return Item{payload: s, defined: true}
}

// Int wraps an integer in its decimal form.
func Int(n int) Item {
	return Item{payload: strconv.Itoa(n), defined: true}
}

// Bool wraps a boolean as "true" or "false".
func Bool(b bool) Item {
	return Item{payload: strconv.FormatBool(b), defined: true}
}

// Raw returns the wire form of the item. The returned slice aliases the
// item's storage and must not be modified.
func (i Item) Raw() []byte {
	return uf.S2B(i.payload)
}

// String returns the text form of the item.
func (i Item) String() string {
	return i.payload
}

// Defined reports whether the item was ever set.
func (i Item) Defined() bool {
	return i.defined
}

// Equal compares two items over their raw byte forms, so items constructed
// from different native kinds still compare equal when their wire forms
// coincide. Unset items equal only other unset items.
func (i Item) Equal(other Item) bool {
	return i.defined == other.defined && i.payload == other.payload
}

// Int parses the item as a decimal integer.
func (i Item) Int() (int, error) {
	return strconv.Atoi(i.payload)
}

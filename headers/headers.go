// Package headers implements an ordered multimap for HTTP header fields.
package headers

import (
	"fmt"
	"reflect"

	"github.com/httpq-dev/httpq/internal/strcomp"
	"github.com/httpq-dev/httpq/item"
	"github.com/indigo-web/utils/uf"
)

// Entry is a single named header carrying one or more values.
type Entry struct {
	Key    item.Item
	Values []item.Item
}

// Headers is an ordered mapping from header names to value sequences. It
// uses linear search instead of a map, which proves to be more efficient on
// relatively low amount of entries, which header blocks practically always
// are — and, unlike a map, it preserves insertion order for wire
// compilation. Name lookup is case-insensitive and treats '-', '_' and ' '
// as the same separator, so "X-Foo" is addressable as "x_foo".
type Headers struct {
	entries []Entry
}

// New returns empty headers.
func New() *Headers {
	return new(Headers)
}

// From recursively normalizes src into headers. Accepted sources are nil,
// Headers themselves, and any map whose keys and values (or slices of
// values) are byte slices, strings, integers, booleans or items; any other
// leaf fails with item.ErrTypeConversion.
//
// Note: Go maps are unordered, so the resulting entry order is undefined.
// Build order-sensitive headers with successive Add calls instead.
func From(src any) (*Headers, error) {
	switch source := src.(type) {
	case nil:
		return New(), nil
	case *Headers:
		return source.Clone(), nil
	}

	value := reflect.ValueOf(src)
	if value.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: %T", item.ErrTypeConversion, src)
	}

	h := &Headers{entries: make([]Entry, 0, value.Len())}
	mrange := value.MapRange()

	for mrange.Next() {
		key, err := item.New(mrange.Key().Interface())
		if err != nil {
			return nil, err
		}

		values, err := normalize(mrange.Value())
		if err != nil {
			return nil, err
		}

		h.put(key, values...)
	}

	return h, nil
}

func normalize(v reflect.Value) ([]item.Item, error) {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() != reflect.Uint8 {
		values := make([]item.Item, 0, v.Len())

		for i := 0; i < v.Len(); i++ {
			nested, err := normalize(v.Index(i))
			if err != nil {
				return nil, err
			}

			values = append(values, nested...)
		}

		return values, nil
	}

	single, err := item.New(v.Interface())
	if err != nil {
		return nil, err
	}

	return []item.Item{single}, nil
}

// Add appends a value under name. When the name is already present (after
// folding), the value joins that entry's sequence; repeated headers thereby
// accumulate instead of overwriting, realizing the "repeated header equals
// multiple values" semantics of HTTP.
func (h *Headers) Add(name, value any) error {
	key, err := item.New(name)
	if err != nil {
		return err
	}

	val, err := item.New(value)
	if err != nil {
		return err
	}

	h.put(key, val)
	return nil
}

func (h *Headers) put(key item.Item, values ...item.Item) {
	if entry := h.lookup(key.String()); entry != nil {
		entry.Values = append(entry.Values, values...)
		return
	}

	h.entries = append(h.entries, Entry{Key: key, Values: values})
}

func (h *Headers) lookup(name string) *Entry {
	for i := range h.entries {
		if strcomp.FoldEqual(name, h.entries[i].Key.String()) {
			return &h.entries[i]
		}
	}

	return nil
}

// Get returns the whole entry stored under the folded name.
func (h *Headers) Get(name string) (Entry, bool) {
	if entry := h.lookup(name); entry != nil {
		return *entry, true
	}

	return Entry{}, false
}

// Value returns the first value under the name, or an empty string.
func (h *Headers) Value(name string) string {
	return h.ValueOr(name, "")
}

// ValueOr returns either the first value under the name or the fallback.
func (h *Headers) ValueOr(name, or string) string {
	entry := h.lookup(name)
	if entry == nil || len(entry.Values) == 0 {
		return or
	}

	return entry.Values[0].String()
}

// Values returns all values under the name. Returns nil if the name isn't
// present.
func (h *Headers) Values(name string) []item.Item {
	if entry := h.lookup(name); entry != nil {
		return entry.Values
	}

	return nil
}

// Has reports whether there's an entry under the folded name.
func (h *Headers) Has(name string) bool {
	return h.lookup(name) != nil
}

// Keys returns all stored names in insertion order.
func (h *Headers) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, entry := range h.entries {
		keys[i] = entry.Key.String()
	}

	return keys
}

// Merge returns new headers holding the union of h and other. Entries under
// the same folded name concatenate their value sequences, h's values first;
// the rest append in order.
func (h *Headers) Merge(other *Headers) *Headers {
	merged := h.Clone()
	if other == nil {
		return merged
	}

	for _, entry := range other.entries {
		merged.put(entry.Key, cloneItems(entry.Values)...)
	}

	return merged
}

// Subtract returns new headers with every value of other removed from the
// entry of the same folded name. A name left with no values is dropped
// entirely.
func (h *Headers) Subtract(other *Headers) *Headers {
	result := New()

	for _, entry := range h.entries {
		kept := entry.Values
		if other != nil {
			if counterpart := other.lookup(entry.Key.String()); counterpart != nil {
				kept = difference(entry.Values, counterpart.Values)
			}
		}

		if len(kept) == 0 {
			continue
		}

		result.entries = append(result.entries, Entry{Key: entry.Key, Values: cloneItems(kept)})
	}

	return result
}

func difference(values, remove []item.Item) []item.Item {
	kept := make([]item.Item, 0, len(values))

	for _, value := range values {
		if !contains(remove, value) {
			kept = append(kept, value)
		}
	}

	return kept
}

func contains(values []item.Item, v item.Item) bool {
	for _, value := range values {
		if value.Equal(v) {
			return true
		}
	}

	return false
}

// Compile emits the block in wire form: a "Name: value, value" line per
// entry in insertion order, followed by the blank-line terminator.
func (h *Headers) Compile() []byte {
	bfr := make([]byte, 0, h.sizeHint())

	for _, entry := range h.entries {
		bfr = append(bfr, entry.Key.Raw()...)
		bfr = append(bfr, ':', ' ')

		for i, value := range entry.Values {
			if i > 0 {
				bfr = append(bfr, ',', ' ')
			}

			bfr = append(bfr, value.Raw()...)
		}

		bfr = append(bfr, '\r', '\n')
	}

	return append(bfr, '\r', '\n')
}

func (h *Headers) sizeHint() int {
	size := len("\r\n")

	for _, entry := range h.entries {
		size += len(entry.Key.String()) + len(": \r\n") + 2*len(entry.Values)
		for _, value := range entry.Values {
			size += len(value.String())
		}
	}

	return size
}

// Len returns the number of stored names.
func (h *Headers) Len() int {
	return len(h.entries)
}

// Empty reports whether no names are stored.
func (h *Headers) Empty() bool {
	return h.Len() == 0
}

// Expose exposes the underlying entries slice.
func (h *Headers) Expose() []Entry {
	return h.entries
}

// Clone creates a deep copy, safe to modify independently.
func (h *Headers) Clone() *Headers {
	if h == nil {
		return New()
	}

	entries := make([]Entry, len(h.entries))
	for i, entry := range h.entries {
		entries[i] = Entry{Key: entry.Key, Values: cloneItems(entry.Values)}
	}

	return &Headers{entries: entries}
}

// Clear drops all the entries, keeping the allocated space.
func (h *Headers) Clear() *Headers {
	h.entries = h.entries[:0]
	return h
}

func (h *Headers) String() string {
	return uf.B2S(h.Compile())
}

func cloneItems(values []item.Item) []item.Item {
	if len(values) == 0 {
		return nil
	}

	cloned := make([]item.Item, len(values))
	copy(cloned, values)

	return cloned
}

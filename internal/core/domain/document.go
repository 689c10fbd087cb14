package domain

import (
	"maps"
	"slices"
)

// Kind identifies which variant a Document holds.
type Kind int

const (
	// KindOther is any scalar that is not a string (integers, floats, booleans, datetimes).
	KindOther Kind = iota
	// KindTable is a mapping of string keys to documents.
	KindTable
	// KindArray is an ordered sequence of documents.
	KindArray
	// KindString is a string scalar.
	KindString
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTable:
		return "table"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	default:
		return "other"
	}
}

// Document is a parsed structured-document value: a table, an array, a string or some other scalar.
// A Document is immutable once built; accessors hand out copies of its containers.
// The zero value is an empty KindOther document.
type Document struct {
	kind  Kind
	table map[string]Document
	array []Document
	str   string
	other any
}

// NewTable creates a table document from the given entries.
func NewTable(entries map[string]Document) Document {
	return Document{kind: KindTable, table: maps.Clone(entries)}
}

// NewArray creates an array document holding the given elements in order.
func NewArray(elems ...Document) Document {
	return Document{kind: KindArray, array: slices.Clone(elems)}
}

// NewString creates a string document.
func NewString(s string) Document {
	return Document{kind: KindString, str: s}
}

// NewOther creates a document for a scalar that is neither a table, an array nor a string.
func NewOther(v any) Document {
	return Document{kind: KindOther, other: v}
}

// FromValue converts a decoded value (as produced by unmarshalling into map[string]any)
// into a Document.
func FromValue(v any) Document {
	switch val := v.(type) {
	case Document:
		return val
	case map[string]any:
		table := make(map[string]Document, len(val))
		for k, elem := range val {
			table[k] = FromValue(elem)
		}
		return Document{kind: KindTable, table: table}
	case []any:
		array := make([]Document, len(val))
		for i, elem := range val {
			array[i] = FromValue(elem)
		}
		return Document{kind: KindArray, array: array}
	case []map[string]any:
		array := make([]Document, len(val))
		for i, elem := range val {
			array[i] = FromValue(elem)
		}
		return Document{kind: KindArray, array: array}
	case string:
		return NewString(val)
	default:
		return NewOther(val)
	}
}

// Kind reports which variant the document holds.
func (d Document) Kind() Kind {
	return d.kind
}

// Get looks up key in a table document.
// It reports false when the key is absent or the document is not a table.
func (d Document) Get(key string) (Document, bool) {
	if d.kind != KindTable {
		return Document{}, false
	}
	v, ok := d.table[key]
	return v, ok
}

// Keys returns the keys of a table document in sorted order, or nil for any other kind.
func (d Document) Keys() []string {
	if d.kind != KindTable {
		return nil
	}
	keys := slices.AppendSeq(make([]string, 0, len(d.table)), maps.Keys(d.table))
	slices.Sort(keys)
	return keys
}

// Array returns a copy of the elements of an array document.
func (d Document) Array() ([]Document, bool) {
	if d.kind != KindArray {
		return nil, false
	}
	return slices.Clone(d.array), true
}

// Str returns the payload of a string document.
func (d Document) Str() (string, bool) {
	if d.kind != KindString {
		return "", false
	}
	return d.str, true
}

package prefsxml

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

const (
	rootTag     = "map"
	nameAttr    = "name"
	valueAttr   = "value"
	declaration = "version='1.0' encoding='utf-8'"
)

// Document is a SharedPreferences tree: a <map> root and its entries.
// The zero value is not usable; create one with NewDocument or ParseDocument.
type Document struct {
	root *etree.Element
}

// NewDocument returns a document with an empty <map> root.
func NewDocument() *Document {
	return &Document{root: etree.NewElement(rootTag)}
}

// ParseDocument parses data as a preferences document. It returns an error wrapping
// ErrMalformed when data is not well-formed XML, has no root element, has more than
// one top-level element, has text outside the root, or is rooted at anything other
// than <map>.
//
// Prolog tokens (declaration, comments, doctype) outside the root are dropped; the
// declaration is regenerated on write.
func ParseDocument(data []byte) (*Document, error) {
	src := etree.NewDocument()
	if err := src.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for _, tok := range src.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return nil, fmt.Errorf("%w: text outside the root element", ErrMalformed)
		}
	}

	roots := src.ChildElements()
	switch {
	case len(roots) == 0:
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	case len(roots) > 1:
		return nil, fmt.Errorf("%w: junk after document element", ErrMalformed)
	}

	root := roots[0]
	if root.FullTag() != rootTag {
		return nil, fmt.Errorf("%w: root element is <%s>, want <%s>", ErrMalformed, root.FullTag(), rootTag)
	}
	src.RemoveChild(root)
	return &Document{root: root}, nil
}

// Len returns the number of child elements under the root, entries of every kind included.
func (d *Document) Len() int {
	return len(d.root.ChildElements())
}

// Entries returns the named children of the root in document order.
// Children without a name attribute are skipped.
func (d *Document) Entries() []Entry {
	var entries []Entry
	for _, el := range d.root.ChildElements() {
		name, ok := nameOf(el)
		if !ok {
			continue
		}
		entries = append(entries, entryOf(el, name))
	}
	return entries
}

// Lookup returns the last entry named key.
func (d *Document) Lookup(key string) (Entry, bool) {
	var (
		found Entry
		ok    bool
	)
	for _, el := range d.root.ChildElements() {
		if name, named := nameOf(el); named && name == key {
			found, ok = entryOf(el, name), true
		}
	}
	return found, ok
}

// Remove deletes every child of the root named key, whatever its kind, and returns
// how many were removed.
func (d *Document) Remove(key string) int {
	removed := 0
	for _, el := range d.root.ChildElements() {
		if name, ok := nameOf(el); ok && name == key {
			d.root.RemoveChild(el)
			removed++
		}
	}
	return removed
}

// Put appends e as the last child of the root. It does not remove earlier entries with
// the same key; use Set for that.
func (d *Document) Put(e Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}

	el := d.root.CreateElement(string(e.Kind))
	el.CreateAttr(nameAttr, e.Key)
	switch e.Kind {
	case StringKind:
		el.SetText(e.Value)
	case BoolKind:
		el.CreateAttr(valueAttr, e.Value)
	}
	return nil
}

// Set replaces any entry named e.Key with e. The new entry goes to the end of the root,
// so a replaced key moves behind every untouched one.
func (d *Document) Set(e Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	d.Remove(e.Key)
	return d.Put(e)
}

// WriteTo serializes the document with an XML declaration and two-space indentation.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	out := etree.NewDocument()
	out.CreateProcInst("xml", declaration)
	out.SetRoot(d.root.Copy())
	out.WriteSettings.CanonicalText = true
	// Parsers normalize raw tab and newline in attributes to spaces.
	out.WriteSettings.CanonicalAttrVal = true

	indent := etree.NewIndentSettings()
	indent.Spaces = 2
	indent.PreserveLeafWhitespace = true
	out.IndentWithSettings(indent)

	return out.WriteTo(w)
}

// Bytes returns the serialized document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// nameOf returns the unqualified name attribute of el. A namespaced attribute such as
// android:name does not count.
func nameOf(el *etree.Element) (string, bool) {
	for _, a := range el.Attr {
		if a.Space == "" && a.Key == nameAttr {
			return a.Value, true
		}
	}
	return "", false
}

func entryOf(el *etree.Element, name string) Entry {
	e := Entry{Kind: Kind(el.FullTag()), Key: name}
	if e.Kind == StringKind {
		e.Value = el.Text()
	} else {
		e.Value = el.SelectAttrValue(valueAttr, "")
	}
	return e
}

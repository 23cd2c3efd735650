// Package xmls contains Go representations of the XML documents of a
// SpriteStudio 6 project: the project (.sspj), cell maps (.ssce), anime packs
// (.ssae) and effects (.ssee).
//
// Field order follows the order in which the authoring tool writes the
// elements. Elements the tool always writes, even when empty, are not
// omitempty.
package xmls

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
)

// VERSION is the document format version written into every root element.
const VERSION = "2.00.00"

// Header is the XML declaration the authoring tool writes.
const Header = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>` + "\n"

// Empty is an element without content.
type Empty struct{}

// NameList is a list of file names, each in a 'value' element.
type NameList struct {
	Value []string `xml:"value"`
}

// ItemList is a list of identifiers, each in an 'item' element.
type ItemList struct {
	Item []string `xml:"item"`
}

// Marshal encodes doc as a complete document, indented with tabs.
func Marshal(doc interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(Header)
	enc := xml.NewEncoder(buf)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func read(r io.Reader, doc interface{}) error {
	return xml.NewDecoder(r).Decode(doc)
}

// Float formats f with as few digits as needed to read it back exactly.
func Float(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// Pair formats two values separated by a space, as the authoring tool writes
// positions and sizes.
func Pair(a, b string) string {
	return a + " " + b
}

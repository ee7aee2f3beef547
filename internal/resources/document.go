// Package resources loads, edits and writes back Android string resource files
// found in the locale directories of a resource tree.
package resources

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/ubuntu/decorate"
	"golang.org/x/text/language"
)

const (
	// StringsFile is the base name of the string resource file of a locale directory.
	StringsFile = "strings.xml"

	rootTag   = "resources"
	stringTag = "string"
	nameAttr  = "name"

	escapedQuote = "&quot;"
)

// Document is a parsed strings.xml file of a single locale.
type Document struct {
	path   string
	locale language.Tag
	doc    *etree.Document
}

// Load parses the string resource file at path.
func Load(path string) (d *Document, err error) {
	defer decorate.OnError(&err, "could not load %q", path)

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("no root element")
	}
	if root.Tag != rootTag {
		return nil, fmt.Errorf("unexpected root element <%s>, expected <%s>", root.Tag, rootTag)
	}

	return &Document{
		path:   path,
		locale: localeOf(filepath.Dir(path)),
		doc:    doc,
	}, nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Locale returns the locale of the document, as qualified by its directory name.
// The base "values" directory, and directories qualified by anything but a locale, return language.Und.
func (d *Document) Locale() language.Tag {
	return d.locale
}

// Len returns the number of top-level string entries.
func (d *Document) Len() int {
	return len(d.entries())
}

// Names returns the names of the top-level string entries in document order.
func (d *Document) Names() []string {
	var names []string
	for _, s := range d.entries() {
		names = append(names, s.SelectAttrValue(nameAttr, ""))
	}
	return names
}

// Lookup returns the value of the string entry called name.
func (d *Document) Lookup(name string) (value string, found bool) {
	s := d.find(name)
	if s == nil {
		return "", false
	}
	return s.Text(), true
}

// Add appends a new string entry. It returns false, leaving the document untouched, if an entry with
// the same name already exists.
func (d *Document) Add(name, value string) bool {
	if d.find(name) != nil {
		return false
	}

	s := d.doc.Root().CreateElement(stringTag)
	s.CreateAttr(nameAttr, name)
	s.SetText(unescapeQuotes(value))
	return true
}

// Remove detaches the string entry called name. It returns false if there is no such entry.
func (d *Document) Remove(name string) bool {
	s := d.find(name)
	if s == nil {
		return false
	}

	d.doc.Root().RemoveChild(s)
	return true
}

// Edit replaces the leading text of the string entry called name. Markup following it, like <b>, is kept.
// It returns false if there is no such entry.
func (d *Document) Edit(name, value string) bool {
	s := d.find(name)
	if s == nil {
		return false
	}

	s.SetText(unescapeQuotes(value))
	return true
}

// entries returns the string elements which are direct children of the root.
// Entries nested in string-array or plurals are not considered.
func (d *Document) entries() []*etree.Element {
	return d.doc.Root().SelectElements(stringTag)
}

func (d *Document) find(name string) *etree.Element {
	for _, s := range d.entries() {
		if s.SelectAttrValue(nameAttr, "") == name {
			return s
		}
	}
	return nil
}

func unescapeQuotes(s string) string {
	return strings.ReplaceAll(s, escapedQuote, `"`)
}

// localeOf parses the locale qualifier of a values directory, such as values-fr or values-fr-rCA.
// BCP 47 qualifiers (values-b+sr+Latn) are supported too.
func localeOf(dir string) language.Tag {
	qualifiers, ok := strings.CutPrefix(filepath.Base(dir), "values-")
	if !ok {
		return language.Und
	}

	var tag string
	if bcp47, ok := strings.CutPrefix(qualifiers, "b+"); ok {
		tag = strings.ReplaceAll(bcp47, "+", "-")
	} else {
		parts := strings.Split(qualifiers, "-")
		tag = parts[0]
		if len(parts) > 1 && len(parts[1]) == 3 && parts[1][0] == 'r' {
			tag += "-" + parts[1][1:]
		}
	}

	t, err := language.Parse(tag)
	if err != nil {
		return language.Und
	}
	return t
}

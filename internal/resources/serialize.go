package resources

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/beevik/etree"
	"github.com/ubuntu/decorate"
)

const (
	declarationTarget = "xml"
	declaration       = `version="1.0" encoding="utf-8"`

	indentSpaces = 4
)

// Save rewrites the document in place, one string entry per line.
//
// Escaped quotes left in the entries are turned into literal ones, and
// quotes are never escaped back on write.
func (d *Document) Save() (err error) {
	defer decorate.OnError(&err, "could not save %q", d.path)

	d.normalizeQuotes()

	d.doc.Root().SetText("\n")
	for _, s := range d.entries() {
		s.SetTail("\n")
	}

	d.resetProlog(true)

	return d.write()
}

// Fix rewrites the document in place, pretty printed with an indentation of 4 spaces.
// Escaped quotes left in the entries are turned into literal ones.
func (d *Document) Fix() (err error) {
	defer decorate.OnError(&err, "could not fix %q", d.path)

	d.normalizeQuotes()
	d.resetProlog(false)

	s := etree.NewIndentSettings()
	s.Spaces = indentSpaces
	s.PreserveLeafWhitespace = true
	d.doc.IndentWithSettings(s)

	return d.write()
}

// Bytes serializes the document as it would be written to disk.
func (d *Document) Bytes() ([]byte, error) {
	d.doc.WriteSettings.CanonicalText = true
	return d.doc.WriteToBytes()
}

func (d *Document) normalizeQuotes() {
	for _, s := range d.entries() {
		if text := s.Text(); text != "" {
			s.SetText(unescapeQuotes(text))
		}
	}
}

// resetProlog replaces any XML declaration by ours and drops the whitespace around top-level tokens.
// With newlines, each top-level token is followed by a newline.
func (d *Document) resetProlog(newlines bool) {
	// Tokens are detached one by one, so that they carry no stale parent or index when added back.
	var kept []etree.Token
	for i := len(d.doc.Child) - 1; i >= 0; i-- {
		t := d.doc.RemoveChildAt(i)
		switch t := t.(type) {
		case *etree.ProcInst:
			if t.Target == declarationTarget {
				continue
			}
		case *etree.CharData:
			if t.IsWhitespace() {
				continue
			}
		}
		kept = append([]etree.Token{t}, kept...)
	}

	d.doc.CreateProcInst(declarationTarget, declaration)
	if newlines {
		d.doc.CreateText("\n")
	}
	for _, t := range kept {
		d.doc.AddChild(t)
		if newlines {
			d.doc.CreateText("\n")
		}
	}
}

// write replaces the file on disk by the serialized document.
// Content is first written to a sibling file, then renamed over the original.
func (d *Document) write() error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}

	perm := fs.FileMode(0600)
	if info, err := os.Stat(d.path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp := d.path + ".new"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("couldn't write to %q: %v", tmp, err)
	}

	if err := os.Rename(tmp, d.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("couldn't rename %q to %q: %v", tmp, d.path, err)
	}

	return nil
}

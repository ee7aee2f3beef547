package resources

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ubuntu/decorate"
)

// localeDirMarker is the substring identifying the locale directories, like values or values-fr.
const localeDirMarker = "values"

// Collection holds the string resource files of every locale directory of a resource tree,
// in lexical path order.
type Collection struct {
	docs []*Document
}

// NewCollection returns a collection made of docs.
func NewCollection(docs ...*Document) *Collection {
	return &Collection{docs: docs}
}

// Discover walks root and loads the strings.xml file of every directory whose name contains "values".
// Directories without such a file, or which cannot be read, are skipped. A missing root results in an empty collection.
func Discover(root string) (c *Collection, err error) {
	defer decorate.OnError(&err, "could not discover string resources in %q", root)

	c = &Collection{}

	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		log.Warningf("Resource directory %q does not exist: no string resource to work on", root)
		return c, nil
	}

	err = filepath.WalkDir(root, func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			if p == root || de == nil || !de.IsDir() {
				return fmt.Errorf("fail to access %q: %v", p, err)
			}
			log.Warningf("Skipping unreadable directory %q: %v", p, err)
			return fs.SkipDir
		}
		// Only deal with locale directories
		if !de.IsDir() || !strings.Contains(de.Name(), localeDirMarker) {
			return nil
		}

		path := filepath.Join(p, StringsFile)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			log.Debugf("Skipping %q: no %s", p, StringsFile)
			return nil
		} else if errors.Is(err, fs.ErrPermission) && p != root {
			log.Warningf("Skipping unreadable directory %q: %v", p, err)
			return fs.SkipDir
		} else if err != nil {
			return fmt.Errorf("fail to access %q: %v", path, err)
		}

		doc, err := Load(path)
		if err != nil {
			return err
		}

		log.WithField("locale", doc.Locale()).Infof("Loaded %d strings from %q", doc.Len(), path)
		c.docs = append(c.docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Documents returns the loaded documents.
func (c *Collection) Documents() []*Document {
	return c.docs
}

// Len returns the number of loaded documents.
func (c *Collection) Len() int {
	return len(c.docs)
}

// Save writes back every document, printing a line to w for each saved file.
// A failing file does not prevent the others from being saved.
func (c *Collection) Save(w io.Writer) (err error) {
	return c.each(w, (*Document).Save, "Saved changes to %s\n")
}

// Fix pretty prints every document, printing a line to w for each fixed file.
// A failing file does not prevent the others from being fixed.
func (c *Collection) Fix(w io.Writer) (err error) {
	return c.each(w, (*Document).Fix, "File fixed : %s\n")
}

func (c *Collection) each(w io.Writer, f func(*Document) error, format string) (err error) {
	for _, d := range c.docs {
		if e := f(d); e != nil {
			log.Warning(e)
			err = errors.Join(err, e)
			continue
		}
		fmt.Fprintf(w, format, d.Path())
	}
	return err
}

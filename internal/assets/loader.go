// Package assets reads the four content collections from a directory or a
// zip bundle. A missing or malformed file yields an empty collection.
package assets

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"gita-tui/internal/content"
)

const (
	ChaptersFile     = "chapters.json"
	VersesFile       = "verse.json"
	TranslationsFile = "translation.json"
	CommentariesFile = "commentary.json"
)

type Collections struct {
	Chapters     []content.Chapter
	Verses       []content.Verse
	Translations []content.Translation
	Commentaries []content.Commentary
}

// Index builds the content index over the loaded collections.
func (c Collections) Index() *content.Index {
	return content.NewIndex(c.Chapters, c.Verses, c.Translations, c.Commentaries)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the bundle's contents when bundle names an existing zip file,
// and dir otherwise. Close the returned closer once loading is done.
func Open(dir, bundle string) (fs.FS, io.Closer, error) {
	if bundle != "" {
		if _, err := os.Stat(bundle); err == nil {
			r, err := zip.OpenReader(bundle)
			if err != nil {
				return nil, nil, fmt.Errorf("open bundle %s: %w", bundle, err)
			}
			return r, r, nil
		}
		log.Printf("assets: bundle %s not found, reading %s", bundle, dir)
	}
	return os.DirFS(dir), nopCloser{}, nil
}

// Load decodes each collection independently.
func Load(fsys fs.FS) Collections {
	var c Collections
	c.Chapters = loadJSON[content.Chapter](fsys, ChaptersFile)
	c.Verses = loadJSON[content.Verse](fsys, VersesFile)
	c.Translations = loadJSON[content.Translation](fsys, TranslationsFile)
	c.Commentaries = loadJSON[content.Commentary](fsys, CommentariesFile)

	log.Printf("assets: loaded %d chapters, %d verses, %d translations, %d commentaries",
		len(c.Chapters), len(c.Verses), len(c.Translations), len(c.Commentaries))
	return c
}

func loadJSON[T any](fsys fs.FS, name string) []T {
	file, err := fsys.Open(name)
	if err != nil {
		log.Printf("assets: %s unavailable: %v", name, err)
		return nil
	}
	defer file.Close()

	var items []T
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		log.Printf("assets: %s malformed: %v", name, err)
		return nil
	}
	return items
}

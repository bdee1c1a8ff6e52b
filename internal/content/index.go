// Package content holds the text's chapters, verses, translations and
// commentaries, and cross-references them by foreign key.
package content

import (
	"slices"
	"sort"
)

// Index is built once at startup and only read afterwards.
type Index struct {
	chapters     []Chapter
	verses       []Verse
	chapterByNum map[int]Chapter
	verseByID    map[int]Verse
	byChapter    map[int][]Verse
	translations map[int][]Translation
	commentaries map[int][]Commentary
}

// NewIndex cross-references the four collections. Nil collections are
// treated as empty; duplicate chapter numbers or verse ids keep the first
// occurrence.
func NewIndex(chapters []Chapter, verses []Verse, translations []Translation, commentaries []Commentary) *Index {
	idx := &Index{
		chapters:     slices.Clone(chapters),
		verses:       slices.Clone(verses),
		chapterByNum: make(map[int]Chapter, len(chapters)),
		verseByID:    make(map[int]Verse, len(verses)),
		byChapter:    make(map[int][]Verse),
		translations: make(map[int][]Translation),
		commentaries: make(map[int][]Commentary),
	}

	for _, ch := range chapters {
		if _, ok := idx.chapterByNum[ch.ChapterNumber]; !ok {
			idx.chapterByNum[ch.ChapterNumber] = ch
		}
	}

	for _, v := range verses {
		if _, ok := idx.verseByID[v.ID]; ok {
			continue
		}
		idx.verseByID[v.ID] = v
		idx.byChapter[v.ChapterNumber] = append(idx.byChapter[v.ChapterNumber], v)
	}
	for n := range idx.byChapter {
		list := idx.byChapter[n]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].VerseNumber < list[j].VerseNumber
		})
	}

	for _, t := range translations {
		idx.translations[t.VerseID] = append(idx.translations[t.VerseID], t)
	}
	for _, c := range commentaries {
		idx.commentaries[c.VerseID] = append(idx.commentaries[c.VerseID], c)
	}

	return idx
}

// Chapters returns all chapters in input order.
func (i *Index) Chapters() []Chapter {
	return slices.Clone(i.chapters)
}

// Verses returns all verses in input order.
func (i *Index) Verses() []Verse {
	return slices.Clone(i.verses)
}

func (i *Index) VerseCount() int {
	return len(i.verses)
}

func (i *Index) ChapterByNumber(n int) (Chapter, bool) {
	ch, ok := i.chapterByNum[n]
	return ch, ok
}

// VersesForChapter returns the chapter's verses ascending by verse number.
func (i *Index) VersesForChapter(n int) []Verse {
	return slices.Clone(i.byChapter[n])
}

func (i *Index) VerseByID(id int) (Verse, bool) {
	v, ok := i.verseByID[id]
	return v, ok
}

// TranslationsForVerse preserves the input order of the translations.
func (i *Index) TranslationsForVerse(id int) []Translation {
	return slices.Clone(i.translations[id])
}

// CommentariesForVerse preserves the input order of the commentaries.
func (i *Index) CommentariesForVerse(id int) []Commentary {
	return slices.Clone(i.commentaries[id])
}

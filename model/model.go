// Package model provides generic containers for tagged text: documents,
// sentences, tokens and free-form annotation tags with character spans.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tag sources.
const (
	SourceMecab = "mecab"
	SourceGold  = "gold"
)

// ErrTokenNotFound is returned when a token surface cannot be located in the
// sentence text during import.
var ErrTokenNotFound = errors.New("model: token not found in sentence text")

// Tag annotates a linguistic object with a typed value and an optional
// character span. CFrom/CTo of -1 mean the span is unknown.
type Tag struct {
	Type   string
	Value  string
	CFrom  int
	CTo    int
	Source string
}

// NewTag creates a spanless tag.
func NewTag(tagType, value string) Tag {
	return Tag{Type: tagType, Value: value, CFrom: -1, CTo: -1}
}

func (t Tag) String() string {
	if t.CFrom >= 0 && t.CTo >= 0 {
		return fmt.Sprintf("`%s`<%d:%d>%s", t.Value, t.CFrom, t.CTo, t.Type)
	}
	return t.Type + "/" + t.Value
}

// Token is a single word in a sentence. CFrom/CTo are rune offsets into the
// sentence text; Text holds the surface form.
type Token struct {
	Text    string
	Lemma   string
	POS     string
	CFrom   int
	CTo     int
	Comment string
	Flag    string
	Tags    []Tag
}

func (t *Token) String() string {
	return fmt.Sprintf("`%s`<%d:%d>", t.Text, t.CFrom, t.CTo)
}

// NewTag attaches a new tag to the token, defaulting the span to the token's own.
func (t *Token) NewTag(tagType, value, source string) *Tag {
	t.Tags = append(t.Tags, Tag{Type: tagType, Value: value, CFrom: t.CFrom, CTo: t.CTo, Source: source})
	return &t.Tags[len(t.Tags)-1]
}

// FindTag returns the first tag with the given type.
func (t *Token) FindTag(tagType string) (Tag, bool) {
	for _, tag := range t.Tags {
		if tag.Type == tagType {
			return tag, true
		}
	}
	return Tag{}, false
}

// TagValues returns the values of all tags with the given type.
func (t *Token) TagValues(tagType string) []string {
	var vals []string
	for _, tag := range t.Tags {
		if tag.Type == tagType {
			vals = append(vals, tag.Value)
		}
	}
	return vals
}

// Concept links a label (for example a sense or a multi-word expression) to
// one or more tokens of a sentence, referenced by index.
type Concept struct {
	Value   string
	Clemma  string
	Comment string
	Flag    string
	Tokens  []int
}

// Sentence is an utterance with its tokens, sentence-level tags and concepts.
type Sentence struct {
	ID       string
	Text     string
	Flag     string
	Comment  string
	Tokens   []Token
	Tags     []Tag
	Concepts []Concept
}

// NewSentence creates a sentence holding the given text.
func NewSentence(text string) *Sentence {
	return &Sentence{Text: text}
}

func (s *Sentence) String() string { return s.Text }

// Len returns the number of tokens.
func (s *Sentence) Len() int { return len(s.Tokens) }

// NewTag attaches a sentence-level tag.
func (s *Sentence) NewTag(tagType, value string, cfrom, cto int) *Tag {
	s.Tags = append(s.Tags, Tag{Type: tagType, Value: value, CFrom: cfrom, CTo: cto})
	return &s.Tags[len(s.Tags)-1]
}

// NewConcept attaches a concept referring to the given token indexes.
func (s *Sentence) NewConcept(value, clemma string, tokens ...int) *Concept {
	s.Concepts = append(s.Concepts, Concept{Value: value, Clemma: clemma, Tokens: tokens})
	return &s.Concepts[len(s.Concepts)-1]
}

// Surface returns the substring of the sentence covered by a tag span,
// counted in runes. Unknown or out-of-range spans yield "".
func (s *Sentence) Surface(t Tag) string {
	if t.CFrom < 0 || t.CTo < t.CFrom {
		return ""
	}
	runes := []rune(s.Text)
	if t.CTo > len(runes) {
		return ""
	}
	return string(runes[t.CFrom:t.CTo])
}

// ImportTokens turns a list of surface strings into tokens, locating each
// one in the sentence text by forward search from the previous token's end.
// Matching is case-insensitive. The search window starts one rune before the
// previous end so adjacent tokens sharing a boundary rune still resolve.
func (s *Sentence) ImportTokens(words []string) error {
	if len(s.Tokens) > 0 {
		return errors.New("model: token list is not empty")
	}
	text := []rune(strings.ToLower(s.Text))
	cfrom := 0
	for _, word := range words {
		needle := []rune(strings.ToLower(word))
		start := indexRunes(text, needle, cfrom)
		if start < 0 {
			return fmt.Errorf("%w: %q in %q from %d", ErrTokenNotFound, word, s.Text, cfrom)
		}
		cto := start + len(needle)
		s.Tokens = append(s.Tokens, Token{Text: word, CFrom: start, CTo: cto})
		cfrom = cto - 1
		if cfrom < 0 {
			cfrom = 0
		}
	}
	return nil
}

// indexRunes returns the rune index of the first occurrence of needle in
// haystack at or after from, or -1.
func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	if len(needle) == 0 {
		if from > len(haystack) {
			return -1
		}
		return from
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j, r := range needle {
			if haystack[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Document is an ordered collection of sentences indexed by ID.
type Document struct {
	Name string
	Path string

	sents  []*Sentence
	index  map[string]*Sentence
	nextID int
}

// NewDocument creates an empty document.
func NewDocument(name string) *Document {
	return &Document{Name: name, Path: ".", index: make(map[string]*Sentence), nextID: 1}
}

// Len returns the number of sentences.
func (d *Document) Len() int { return len(d.sents) }

// Sentences returns the sentences in insertion order.
func (d *Document) Sentences() []*Sentence { return d.sents }

// Get returns the sentence with the given ID.
func (d *Document) Get(id string) (*Sentence, bool) {
	s, ok := d.index[id]
	return s, ok
}

// AddSentence adds an existing sentence, assigning a sequential ID when the
// sentence has none. Duplicate IDs are rejected.
func (d *Document) AddSentence(s *Sentence) error {
	if s == nil {
		return errors.New("model: sentence cannot be nil")
	}
	if s.ID == "" {
		for {
			id := strconv.Itoa(d.nextID)
			d.nextID++
			if _, taken := d.index[id]; !taken {
				s.ID = id
				break
			}
		}
	} else if _, taken := d.index[s.ID]; taken {
		return fmt.Errorf("model: sentence ID %s exists", s.ID)
	}
	d.index[s.ID] = s
	d.sents = append(d.sents, s)
	return nil
}

// NewSentence creates a sentence from text and adds it to the document.
func (d *Document) NewSentence(text string) *Sentence {
	s := NewSentence(text)
	d.AddSentence(s)
	return s
}

// Remove deletes a sentence by ID and returns it.
func (d *Document) Remove(id string) (*Sentence, bool) {
	s, ok := d.index[id]
	if !ok {
		return nil, false
	}
	delete(d.index, id)
	for i, cur := range d.sents {
		if cur == s {
			d.sents = append(d.sents[:i], d.sents[i+1:]...)
			break
		}
	}
	return s, true
}

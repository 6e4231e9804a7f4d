package model

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"kotoba/textio"
)

// Explicit JSON shapes per concrete type. Spans are emitted only when known,
// so a spanless tag round-trips back to {-1, -1}.

type tagJSON struct {
	Value  string `json:"value"`
	Type   string `json:"type,omitempty"`
	Source string `json:"source,omitempty"`
	CFrom  *int   `json:"cfrom,omitempty"`
	CTo    *int   `json:"cto,omitempty"`
}

func tagToJSON(t Tag) tagJSON {
	j := tagJSON{Value: t.Value, Type: t.Type, Source: t.Source}
	if t.CFrom >= 0 {
		cfrom := t.CFrom
		j.CFrom = &cfrom
	}
	if t.CTo >= 0 {
		cto := t.CTo
		j.CTo = &cto
	}
	return j
}

func (j tagJSON) tag() Tag {
	t := Tag{Value: j.Value, Type: j.Type, Source: j.Source, CFrom: -1, CTo: -1}
	if j.CFrom != nil {
		t.CFrom = *j.CFrom
	}
	if j.CTo != nil {
		t.CTo = *j.CTo
	}
	return t
}

// MarshalJSON encodes the tag with its span omitted when unknown.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagToJSON(t))
}

// UnmarshalJSON decodes a tag, defaulting missing span fields to -1.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var j tagJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*t = j.tag()
	return nil
}

type tokenJSON struct {
	CFrom   int      `json:"cfrom"`
	CTo     int      `json:"cto"`
	Text    string   `json:"text"`
	Lemma   string   `json:"lemma,omitempty"`
	POS     string   `json:"pos,omitempty"`
	Comment string   `json:"comment,omitempty"`
	Flag    string   `json:"flag,omitempty"`
	Tags    []tagJSON `json:"tags,omitempty"`
}

// MarshalJSON encodes a token together with its tags.
func (t Token) MarshalJSON() ([]byte, error) {
	j := tokenJSON{CFrom: t.CFrom, CTo: t.CTo, Text: t.Text, Lemma: t.Lemma,
		POS: t.POS, Comment: t.Comment, Flag: t.Flag}
	for _, tag := range t.Tags {
		j.Tags = append(j.Tags, tagToJSON(tag))
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes a token together with its tags.
func (t *Token) UnmarshalJSON(data []byte) error {
	var j tokenJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*t = Token{CFrom: j.CFrom, CTo: j.CTo, Text: j.Text, Lemma: j.Lemma,
		POS: j.POS, Comment: j.Comment, Flag: j.Flag}
	for _, tag := range j.Tags {
		t.Tags = append(t.Tags, tag.tag())
	}
	return nil
}

type conceptJSON struct {
	Value   string `json:"value"`
	Clemma  string `json:"clemma"`
	Tokens  []int  `json:"tokens"`
	Comment string `json:"comment,omitempty"`
	Flag    string `json:"flag,omitempty"`
}

type sentenceJSON struct {
	Text     string        `json:"text"`
	ID       string        `json:"ID,omitempty"`
	Flag     string        `json:"flag,omitempty"`
	Comment  string        `json:"comment,omitempty"`
	Tokens   []Token       `json:"tokens,omitempty"`
	Concepts []conceptJSON `json:"concepts,omitempty"`
	Tags     []Tag         `json:"tags,omitempty"`
}

// MarshalJSON encodes the sentence with tokens, concepts and tags.
func (s *Sentence) MarshalJSON() ([]byte, error) {
	j := sentenceJSON{Text: s.Text, ID: s.ID, Flag: s.Flag, Comment: s.Comment,
		Tokens: s.Tokens, Tags: s.Tags}
	for _, c := range s.Concepts {
		j.Concepts = append(j.Concepts, conceptJSON{Value: c.Value, Clemma: c.Clemma,
			Tokens: c.Tokens, Comment: c.Comment, Flag: c.Flag})
	}
	return json.Marshal(j)
}

// UnmarshalJSON decodes a sentence with tokens, concepts and tags.
func (s *Sentence) UnmarshalJSON(data []byte) error {
	var j sentenceJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*s = Sentence{Text: j.Text, ID: j.ID, Flag: j.Flag, Comment: j.Comment,
		Tokens: j.Tokens, Tags: j.Tags}
	for _, c := range j.Concepts {
		s.Concepts = append(s.Concepts, Concept{Value: c.Value, Clemma: c.Clemma,
			Tokens: c.Tokens, Comment: c.Comment, Flag: c.Flag})
	}
	return nil
}

// WriteJSON writes the document as JSON lines, one sentence object per line.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, sent := range doc.Sentences() {
		if err := enc.Encode(sent); err != nil {
			return fmt.Errorf("model: encode sentence %s: %w", sent.ID, err)
		}
	}
	return nil
}

// ReadJSON reads a JSON-lines document.
func ReadJSON(r io.Reader, name string) (*Document, error) {
	doc := NewDocument(name)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sent := &Sentence{}
		if err := json.Unmarshal([]byte(line), sent); err != nil {
			return nil, fmt.Errorf("model: decode sentence: %w", err)
		}
		if err := doc.AddSentence(sent); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveJSON writes the document to path (gzip when the path ends in .gz).
func SaveJSON(path string, doc *Document) error {
	w, err := textio.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(w, doc); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// LoadJSON reads a document from path, naming it after the file.
func LoadJSON(path string) (*Document, error) {
	r, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	doc, err := ReadJSON(r, name)
	if err != nil {
		return nil, err
	}
	doc.Path = filepath.Dir(path)
	return doc, nil
}

package tokenize

import (
	"context"
	"strings"
	"unicode"

	"kotoba/model"
	"kotoba/tagger"
)

// Sentence-final punctuation in IPA dictionary terms.
const (
	posSymbol   = "記号"
	subFullStop = "句点"
)

// Token is a record located in its sentence text. Spans are rune offsets
// into Sent.Text; a token whose surface could not be located carries a
// zero-width span at the search position.
type Token struct {
	Record
	CFrom int
	CTo   int
}

// Sent is one segmented sentence with its located tokens.
type Sent struct {
	Text   string
	Tokens []Token
}

// Words returns the token surface forms in order.
func (s *Sent) Words() []string {
	words := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		words[i] = t.Surface
	}
	return words
}

func (s *Sent) String() string {
	return strings.Join(s.Words(), " ")
}

// ToTTL converts the sentence into the annotation model: token spans carry
// over, parts of speech are flattened, lemmas fall back to surfaces and
// readings become tags on each token.
func (s *Sent) ToTTL() *model.Sentence {
	ts := model.NewSentence(s.Text)
	for _, tk := range s.Tokens {
		if tk.IsEOS() {
			continue
		}
		mt := model.Token{
			Text:  tk.Surface,
			Lemma: tk.Lemma(),
			POS:   tk.POS3(),
			CFrom: tk.CFrom,
			CTo:   tk.CTo,
		}
		if tk.Reading != "" && tk.Reading != Wildcard {
			mt.Tags = append(mt.Tags,
				model.Tag{Type: "reading", Value: tk.Reading, CFrom: -1, CTo: -1, Source: model.SourceMecab},
				model.Tag{Type: "reading_hira", Value: tk.ReadingHira(), CFrom: -1, CTo: -1, Source: model.SourceMecab},
			)
		}
		ts.Tokens = append(ts.Tokens, mt)
	}
	return ts
}

// Doc is an ordered list of segmented sentences.
type Doc struct {
	Name  string
	Sents []*Sent
}

// ToTTL converts the document into the annotation model, numbering
// sentences sequentially.
func (d *Doc) ToTTL() (*model.Document, error) {
	doc := model.NewDocument(d.Name)
	for _, sent := range d.Sents {
		if err := doc.AddSentence(sent.ToTTL()); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// SplitSentences reconciles tagger records against the source text and cuts
// it into sentences. Each surface is located by forward search from the end
// of the previous token; a sentence closes on full-stop punctuation, and any
// trailing tokens form a final sentence. When autoStrip is set the
// surrounding whitespace of each sentence is trimmed and token spans are
// shifted accordingly.
func SplitSentences(text string, records []Record, autoStrip bool) []*Sent {
	runes := []rune(text)
	var sents []*Sent
	var bucket []Token
	cursor, sentStart := 0, 0

	flush := func(end int) {
		sents = append(sents, makeSent(runes, sentStart, end, bucket, autoStrip))
		bucket = nil
		sentStart = end
	}

	for _, rec := range records {
		if rec.IsEOS() {
			continue
		}
		surface := []rune(rec.Surface)
		cfrom := indexRunesFrom(runes, surface, cursor)
		cto := cfrom + len(surface)
		if cfrom < 0 {
			// Surface not present in the source (tagger normalization);
			// pin a zero-width span at the search position.
			cfrom, cto = cursor, cursor
		}
		cursor = cto
		bucket = append(bucket, Token{Record: rec, CFrom: cfrom, CTo: cto})
		if rec.POS == posSymbol && rec.Sub1 == subFullStop {
			flush(cursor)
		}
	}
	if len(bucket) > 0 {
		flush(cursor)
	}
	return sents
}

// makeSent cuts runes[start:end] into a sentence and rebases the absolute
// token spans onto it.
func makeSent(runes []rune, start, end int, bucket []Token, autoStrip bool) *Sent {
	if end > len(runes) {
		end = len(runes)
	}
	if start > end {
		start = end
	}
	if autoStrip {
		for start < end && unicode.IsSpace(runes[start]) {
			start++
		}
		for end > start && unicode.IsSpace(runes[end-1]) {
			end--
		}
	}
	sent := &Sent{Text: string(runes[start:end])}
	width := end - start
	for _, tk := range bucket {
		tk.CFrom -= start
		tk.CTo -= start
		if tk.CFrom < 0 {
			tk.CFrom = 0
		}
		if tk.CTo < tk.CFrom {
			tk.CTo = tk.CFrom
		}
		if tk.CTo > width {
			tk.CTo = width
		}
		if tk.CFrom > width {
			tk.CFrom = width
		}
		sent.Tokens = append(sent.Tokens, tk)
	}
	return sent
}

func indexRunesFrom(haystack, needle []rune, from int) int {
	if len(needle) == 0 || from < 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
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

// Parser turns raw text into segmented sentences using a tagger backend.
type Parser struct {
	Tagger tagger.Tagger

	// SplitLines runs the tagger once per input line instead of once over
	// the whole text, which keeps long documents within analyzer limits.
	SplitLines bool

	// AutoStrip trims surrounding whitespace from each sentence.
	AutoStrip bool
}

// NewParser creates a parser with line splitting and whitespace stripping
// enabled.
func NewParser(t tagger.Tagger) *Parser {
	return &Parser{Tagger: t, SplitLines: true, AutoStrip: true}
}

// ParseSent analyzes text as a single sentence, without segmentation.
func (p *Parser) ParseSent(ctx context.Context, text string) (*Sent, error) {
	raw, err := p.Tagger.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	runes := []rune(text)
	var bucket []Token
	cursor := 0
	for _, rec := range ParseLines(raw) {
		if rec.IsEOS() {
			continue
		}
		surface := []rune(rec.Surface)
		cfrom := indexRunesFrom(runes, surface, cursor)
		cto := cfrom + len(surface)
		if cfrom < 0 {
			cfrom, cto = cursor, cursor
		}
		cursor = cto
		bucket = append(bucket, Token{Record: rec, CFrom: cfrom, CTo: cto})
	}
	return makeSent(runes, 0, len(runes), bucket, p.AutoStrip), nil
}

// ParseDoc analyzes text into a named document of segmented sentences.
func (p *Parser) ParseDoc(ctx context.Context, name, text string) (*Doc, error) {
	doc := &Doc{Name: name}
	units := []string{text}
	if p.SplitLines {
		units = strings.Split(text, "\n")
	}
	for _, unit := range units {
		if strings.TrimSpace(unit) == "" {
			continue
		}
		raw, err := p.Tagger.Parse(ctx, unit)
		if err != nil {
			return nil, err
		}
		doc.Sents = append(doc.Sents, SplitSentences(unit, ParseLines(raw), p.AutoStrip)...)
	}
	return doc, nil
}

// Tokenize returns the surface forms of text without any feature analysis.
func (p *Parser) Tokenize(ctx context.Context, text string) ([]string, error) {
	raw, err := p.Tagger.Wakati(ctx, text)
	if err != nil {
		return nil, err
	}
	return strings.Fields(raw), nil
}

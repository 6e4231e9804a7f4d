// Package tokenize parses the tabular output of a morphological tagger into
// token records, reconstructs sentence boundaries and character offsets
// against the original text, and renders the result as plain text, HTML ruby
// markup or a tab-separated dump.
package tokenize

import (
	"fmt"
	"strings"

	"kotoba/kana"
)

// NumFields is the number of columns in one tagger output row.
const NumFields = 10

// Wildcard marks an unset field in tagger output.
const Wildcard = "*"

const eosSurface = "EOS"

// Record is one token row: surface form plus the nine IPA dictionary
// features. Missing trailing fields are empty strings.
type Record struct {
	Surface string // surface form as retokenized by the tagger
	POS     string // primary part of speech
	Sub1    string // POS sub-classification, level 1
	Sub2    string // POS sub-classification, level 2
	Sub3    string // POS sub-classification, level 3
	Infl    string // inflection form
	Conj    string // conjugation type
	Root    string // dictionary root (lemma)
	Reading string // phonetic reading, usually katakana
	Pron    string // pronunciation
}

// ParseRecord splits one raw output line on tab and comma separators into a
// record. Rows with fewer than ten fields are padded with empty strings;
// extra trailing sub-fields are dropped. Field order is never rearranged.
func ParseRecord(line string) Record {
	parts := splitFields(line)
	for len(parts) < NumFields {
		parts = append(parts, "")
	}
	return Record{
		Surface: parts[0],
		POS:     parts[1],
		Sub1:    parts[2],
		Sub2:    parts[3],
		Sub3:    parts[4],
		Infl:    parts[5],
		Conj:    parts[6],
		Root:    parts[7],
		Reading: parts[8],
		Pron:    parts[9],
	}
}

func splitFields(line string) []string {
	var fields []string
	start := 0
	for i, r := range line {
		if r == '\t' || r == ',' {
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	return append(fields, line[start:])
}

// ParseLines parses raw multi-line tagger output, one record per non-empty
// line. The trailing EOS sentinel rows are kept.
func ParseLines(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, ParseRecord(line))
	}
	return records
}

// IsEOS reports whether the record is the tagger's end-of-sentence sentinel.
func (r Record) IsEOS() bool {
	return r.Surface == eosSurface &&
		r.POS == "" && r.Sub1 == "" && r.Sub2 == "" && r.Sub3 == "" &&
		r.Infl == "" && r.Conj == "" && r.Root == "" && r.Reading == "" && r.Pron == ""
}

// Fields returns the ten fields in wire order.
func (r Record) Fields() [NumFields]string {
	return [NumFields]string{r.Surface, r.POS, r.Sub1, r.Sub2, r.Sub3,
		r.Infl, r.Conj, r.Root, r.Reading, r.Pron}
}

// POS3 flattens the part of speech into a dash-joined label using up to three
// levels, skipping wildcard and empty sub-levels.
func (r Record) POS3() string {
	parts := []string{r.POS}
	if r.Sub1 != "" && r.Sub1 != Wildcard {
		parts = append(parts, r.Sub1)
		if r.Sub2 != "" && r.Sub2 != Wildcard {
			parts = append(parts, r.Sub2)
		}
	}
	return strings.Join(parts, "-")
}

// Lemma returns the dictionary root, falling back to the surface form when
// the tagger emitted a wildcard or nothing.
func (r Record) Lemma() string {
	if r.Root == "" || r.Root == Wildcard {
		return r.Surface
	}
	return r.Root
}

// ReadingHira returns the reading transliterated to hiragana.
func (r Record) ReadingHira() string {
	return kana.KataToHira(r.Reading)
}

// NeedRuby reports whether the token should carry a ruby gloss: it has a
// reading that differs from the surface both as emitted and in hiragana.
func (r Record) NeedRuby() bool {
	return r.Reading != "" && r.Reading != r.Surface && r.ReadingHira() != r.Surface
}

// Ruby renders the token as HTML, wrapping it in ruby markup when a gloss is
// warranted. EOS records render as the empty string.
func (r Record) Ruby() string {
	switch {
	case r.NeedRuby():
		return fmt.Sprintf("<ruby><rb>%s</rb><rt>%s</rt></ruby>", r.Surface, r.ReadingHira())
	case r.IsEOS():
		return ""
	default:
		return r.Surface
	}
}

// CSV renders the ten fields tab-joined, substituting a wildcard for empty
// values.
func (r Record) CSV() string {
	fields := r.Fields()
	out := make([]string, NumFields)
	for i, f := range fields[:] {
		if f == "" {
			f = Wildcard
		}
		out[i] = f
	}
	return strings.Join(out, "\t")
}

func (r Record) String() string {
	return fmt.Sprintf("[%s(%s-%s/%s/%s|%s|%s|%s)]",
		r.Surface, r.POS, r.Sub1, r.Sub2, r.Sub3, r.Root, r.Reading, r.Pron)
}

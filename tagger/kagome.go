package tagger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Dict selects the dictionary a Kagome tagger analyzes with.
type Dict string

// Supported kagome dictionaries.
const (
	DictIPA Dict = "ipa"
	DictUni Dict = "uni"
)

// Kagome is a resident in-process tagger backed by the kagome tokenizer.
// The underlying tokenizer is built lazily on first use, exactly once, and
// reused for the lifetime of the value.
type Kagome struct {
	dict Dict

	once sync.Once
	tok  *tokenizer.Tokenizer
	err  error
}

// NewKagome creates a kagome-backed tagger using the given dictionary.
func NewKagome(dict Dict) *Kagome {
	if dict == "" {
		dict = DictIPA
	}
	return &Kagome{dict: dict}
}

func (k *Kagome) init() error {
	k.once.Do(func() {
		switch k.dict {
		case DictIPA:
			k.tok, k.err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
		case DictUni:
			k.tok, k.err = tokenizer.New(uni.Dict(), tokenizer.OmitBosEos())
		default:
			k.err = fmt.Errorf("tagger: unknown kagome dictionary %q", k.dict)
		}
	})
	return k.err
}

// Parse analyzes text and renders the tokens in mecab wire format with a
// trailing EOS line.
func (k *Kagome) Parse(ctx context.Context, text string) (string, error) {
	if err := k.init(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, t := range k.tok.Tokenize(text) {
		b.WriteString(t.Surface)
		b.WriteByte('\t')
		b.WriteString(strings.Join(t.Features(), ","))
		b.WriteByte('\n')
	}
	b.WriteString("EOS\n")
	return b.String(), nil
}

// Wakati analyzes text and returns the surface forms joined by single
// spaces, matching mecab's -Owakati output shape.
func (k *Kagome) Wakati(ctx context.Context, text string) (string, error) {
	if err := k.init(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, t := range k.tok.Tokenize(text) {
		b.WriteString(t.Surface)
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String(), nil
}

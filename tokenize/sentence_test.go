package tokenize

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rainOutput = `雨	名詞,一般,*,*,*,*,雨,アメ,アメ
が	助詞,格助詞,一般,*,*,*,が,ガ,ガ
降る	動詞,自立,*,*,五段・ラ行,基本形,降る,フル,フル
。	記号,句点,*,*,*,*,。,。,。
EOS
`

const catOutput = `猫	名詞,一般,*,*,*,*,猫,ネコ,ネコ
が	助詞,格助詞,一般,*,*,*,が,ガ,ガ
好き	名詞,形容動詞語幹,*,*,*,*,好き,スキ,スキ
です	助動詞,*,*,*,特殊・デス,基本形,です,デス,デス
。	記号,句点,*,*,*,*,。,。,。
EOS
`

const dogOutput = `犬	名詞,一般,*,*,*,*,犬,イヌ,イヌ
も	助詞,係助詞,*,*,*,*,も,モ,モ
好き	名詞,形容動詞語幹,*,*,*,*,好き,スキ,スキ
です	助動詞,*,*,*,特殊・デス,基本形,です,デス,デス
。	記号,句点,*,*,*,*,。,。,。
EOS
`

// fakeTagger replays canned analyzer output keyed by input text.
type fakeTagger struct {
	parses  map[string]string
	wakatis map[string]string
}

func (f *fakeTagger) Parse(_ context.Context, text string) (string, error) {
	out, ok := f.parses[text]
	if !ok {
		return "", fmt.Errorf("no canned parse for %q", text)
	}
	return out, nil
}

func (f *fakeTagger) Wakati(_ context.Context, text string) (string, error) {
	out, ok := f.wakatis[text]
	if !ok {
		return "", fmt.Errorf("no canned wakati for %q", text)
	}
	return out, nil
}

func newFakeTagger() *fakeTagger {
	return &fakeTagger{
		parses: map[string]string{
			"雨が降る。":          rainOutput,
			"猫が好きです。":        catOutput,
			"犬も好きです。":        dogOutput,
			"猫が好きです。犬も好きです。":  strings.TrimSuffix(catOutput, "EOS\n") + dogOutput,
			"猫が好きです。\n犬も好きです。": strings.TrimSuffix(catOutput, "EOS\n") + dogOutput,
		},
		wakatis: map[string]string{
			"雨が降る。": "雨 が 降る 。 \n",
		},
	}
}

func TestSplitSentencesSingle(t *testing.T) {
	text := "雨が降る。"
	sents := SplitSentences(text, ParseLines(rainOutput), true)
	require.Len(t, sents, 1)
	sent := sents[0]
	assert.Equal(t, text, sent.Text)
	assert.Equal(t, []string{"雨", "が", "降る", "。"}, sent.Words())
	assert.Equal(t, "雨 が 降る 。", sent.String())

	// Offsets are rune positions into the sentence text.
	assert.Equal(t, 0, sent.Tokens[0].CFrom)
	assert.Equal(t, 1, sent.Tokens[0].CTo)
	assert.Equal(t, 2, sent.Tokens[2].CFrom)
	assert.Equal(t, 4, sent.Tokens[2].CTo)
	for _, tk := range sent.Tokens {
		assert.Equal(t, tk.Surface, string([]rune(sent.Text)[tk.CFrom:tk.CTo]))
	}
}

func TestSplitSentencesMultiple(t *testing.T) {
	text := "猫が好きです。犬も好きです。"
	records := ParseLines(strings.TrimSuffix(catOutput, "EOS\n") + dogOutput)
	sents := SplitSentences(text, records, true)
	require.Len(t, sents, 2)
	assert.Equal(t, "猫が好きです。", sents[0].Text)
	assert.Equal(t, "犬も好きです。", sents[1].Text)
	assert.Len(t, sents[0].Tokens, 5)
	assert.Len(t, sents[1].Tokens, 5)

	// Each sentence's spans start over at zero.
	assert.Equal(t, 0, sents[1].Tokens[0].CFrom)
	assert.Equal(t, "犬", string([]rune(sents[1].Text)[0:1]))
}

func TestSplitSentencesTrailingBucket(t *testing.T) {
	// No closing punctuation: the leftovers still form a sentence.
	text := "雨が降る"
	records := ParseLines(`雨	名詞,一般,*,*,*,*,雨,アメ,アメ
が	助詞,格助詞,一般,*,*,*,が,ガ,ガ
降る	動詞,自立,*,*,五段・ラ行,基本形,降る,フル,フル
EOS
`)
	sents := SplitSentences(text, records, true)
	require.Len(t, sents, 1)
	assert.Equal(t, "雨が降る", sents[0].Text)
	assert.Len(t, sents[0].Tokens, 3)
}

func TestSplitSentencesAutoStrip(t *testing.T) {
	text := "  雨が降る。  "
	sents := SplitSentences(text, ParseLines(rainOutput), true)
	require.Len(t, sents, 1)
	assert.Equal(t, "雨が降る。", sents[0].Text)
	// Spans shift along with the stripped prefix.
	assert.Equal(t, 0, sents[0].Tokens[0].CFrom)
	assert.Equal(t, "雨", string([]rune(sents[0].Text)[0:1]))

	kept := SplitSentences(text, ParseLines(rainOutput), false)
	require.Len(t, kept, 1)
	assert.Equal(t, "  雨が降る。", kept[0].Text)
	assert.Equal(t, 2, kept[0].Tokens[0].CFrom)
}

func TestSplitSentencesMissingSurface(t *testing.T) {
	// A surface the tagger normalized away gets a zero-width span and must
	// not derail the tokens after it.
	text := "雨が降る。"
	records := ParseLines(`雨	名詞,一般,*,*,*,*,雨,アメ,アメ
ガ	助詞,格助詞,一般,*,*,*,が,ガ,ガ
降る	動詞,自立,*,*,五段・ラ行,基本形,降る,フル,フル
。	記号,句点,*,*,*,*,。,。,。
EOS
`)
	sents := SplitSentences(text, records, true)
	require.Len(t, sents, 1)
	ghost := sents[0].Tokens[1]
	assert.Equal(t, ghost.CFrom, ghost.CTo)
	assert.Equal(t, 2, sents[0].Tokens[2].CFrom, "search resumes after the ghost")
}

func TestSplitSentencesOffsetsMonotonic(t *testing.T) {
	text := "猫が好きです。犬も好きです。"
	records := ParseLines(strings.TrimSuffix(catOutput, "EOS\n") + dogOutput)
	for _, sent := range SplitSentences(text, records, true) {
		prev := 0
		for _, tk := range sent.Tokens {
			assert.GreaterOrEqual(t, tk.CFrom, prev)
			assert.GreaterOrEqual(t, tk.CTo, tk.CFrom)
			prev = tk.CTo
		}
	}
}

func TestParserParseSent(t *testing.T) {
	p := NewParser(newFakeTagger())
	sent, err := p.ParseSent(context.Background(), "雨が降る。")
	require.NoError(t, err)
	assert.Equal(t, "雨が降る。", sent.Text)
	assert.Len(t, sent.Tokens, 4)
}

func TestParserParseDocSplitLines(t *testing.T) {
	p := NewParser(newFakeTagger())
	doc, err := p.ParseDoc(context.Background(), "pets", "猫が好きです。\n\n犬も好きです。\n")
	require.NoError(t, err)
	require.Len(t, doc.Sents, 2)
	assert.Equal(t, "猫が好きです。", doc.Sents[0].Text)
	assert.Equal(t, "犬も好きです。", doc.Sents[1].Text)
}

func TestParserParseDocSinglePassEquivalence(t *testing.T) {
	// One line holding two sentences segments the same whether the tagger
	// runs per line or over the whole text.
	text := "猫が好きです。犬も好きです。"
	perLine := NewParser(newFakeTagger())
	single := NewParser(newFakeTagger())
	single.SplitLines = false

	a, err := perLine.ParseDoc(context.Background(), "d", text)
	require.NoError(t, err)
	b, err := single.ParseDoc(context.Background(), "d", text)
	require.NoError(t, err)
	require.Equal(t, len(a.Sents), len(b.Sents))
	for i := range a.Sents {
		assert.Equal(t, a.Sents[i].Text, b.Sents[i].Text)
		assert.Equal(t, a.Sents[i].Words(), b.Sents[i].Words())
	}
}

func TestParserParseDocSinglePassOverNewlines(t *testing.T) {
	// Single-pass mode sees the newline inside the text; the forward search
	// must step over it and still cut the same two sentences as line mode.
	text := "猫が好きです。\n犬も好きです。"
	perLine := NewParser(newFakeTagger())
	single := NewParser(newFakeTagger())
	single.SplitLines = false

	a, err := perLine.ParseDoc(context.Background(), "d", text)
	require.NoError(t, err)
	b, err := single.ParseDoc(context.Background(), "d", text)
	require.NoError(t, err)

	require.Len(t, b.Sents, 2)
	assert.Equal(t, "猫が好きです。", b.Sents[0].Text)
	assert.Equal(t, "犬も好きです。", b.Sents[1].Text)
	require.Equal(t, len(a.Sents), len(b.Sents))
	for i := range a.Sents {
		assert.Equal(t, a.Sents[i].Text, b.Sents[i].Text)
		assert.Equal(t, a.Sents[i].Words(), b.Sents[i].Words())
	}

	// Spans stay valid after the stripped newline shifts the second sentence.
	for _, sent := range b.Sents {
		for _, tk := range sent.Tokens {
			assert.Equal(t, tk.Surface, string([]rune(sent.Text)[tk.CFrom:tk.CTo]))
		}
	}
}

func TestParserTokenize(t *testing.T) {
	p := NewParser(newFakeTagger())
	words, err := p.Tokenize(context.Background(), "雨が降る。")
	require.NoError(t, err)
	assert.Equal(t, []string{"雨", "が", "降る", "。"}, words)
}

func TestSentToTTL(t *testing.T) {
	sents := SplitSentences("雨が降る。", ParseLines(rainOutput), true)
	require.Len(t, sents, 1)
	ts := sents[0].ToTTL()
	require.Len(t, ts.Tokens, 4)

	rain := ts.Tokens[0]
	assert.Equal(t, "雨", rain.Text)
	assert.Equal(t, "雨", rain.Lemma)
	assert.Equal(t, "名詞-一般", rain.POS)
	assert.Equal(t, 0, rain.CFrom)
	assert.Equal(t, 1, rain.CTo)
	assert.Equal(t, []string{"アメ"}, rain.TagValues("reading"))
	assert.Equal(t, []string{"あめ"}, rain.TagValues("reading_hira"))

	fall := ts.Tokens[2]
	assert.Equal(t, "動詞-自立", fall.POS)
	assert.Equal(t, "降る", fall.Lemma)
}

func TestDocToTTL(t *testing.T) {
	p := NewParser(newFakeTagger())
	doc, err := p.ParseDoc(context.Background(), "pets", "猫が好きです。\n犬も好きです。")
	require.NoError(t, err)
	ttl, err := doc.ToTTL()
	require.NoError(t, err)
	assert.Equal(t, "pets", ttl.Name)
	assert.Equal(t, 2, ttl.Len())
	ids := make(map[string]bool)
	for _, s := range ttl.Sentences() {
		assert.False(t, ids[s.ID], "sentence IDs are unique")
		ids[s.ID] = true
	}
}

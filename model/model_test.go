package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagString(t *testing.T) {
	assert.Equal(t, "pos/名詞", NewTag("pos", "名詞").String())
	assert.Equal(t, "`雨`<0:1>reading", Tag{Type: "reading", Value: "雨", CFrom: 0, CTo: 1}.String())
}

func TestTokenTags(t *testing.T) {
	tk := Token{Text: "雨", CFrom: 0, CTo: 1}
	tk.NewTag("reading", "アメ", SourceMecab)
	tk.NewTag("reading_hira", "あめ", SourceMecab)
	tk.NewTag("reading", "あま", SourceGold)

	tag, ok := tk.FindTag("reading")
	require.True(t, ok)
	assert.Equal(t, "アメ", tag.Value)
	assert.Equal(t, 0, tag.CFrom, "token tags default to the token span")
	assert.Equal(t, []string{"アメ", "あま"}, tk.TagValues("reading"))

	_, ok = tk.FindTag("sense")
	assert.False(t, ok)
	assert.Nil(t, tk.TagValues("sense"))
}

func TestSentenceSurface(t *testing.T) {
	s := NewSentence("雨が降る。")
	assert.Equal(t, "降る", s.Surface(Tag{CFrom: 2, CTo: 4}))
	assert.Equal(t, "", s.Surface(NewTag("x", "y")), "unknown span")
	assert.Equal(t, "", s.Surface(Tag{CFrom: 3, CTo: 99}), "out of range")
}

func TestImportTokens(t *testing.T) {
	s := NewSentence("猫が好きです。")
	require.NoError(t, s.ImportTokens([]string{"猫", "が", "好き", "です", "。"}))
	require.Len(t, s.Tokens, 5)
	assert.Equal(t, 0, s.Tokens[0].CFrom)
	assert.Equal(t, 1, s.Tokens[0].CTo)
	assert.Equal(t, 2, s.Tokens[2].CFrom)
	assert.Equal(t, 4, s.Tokens[2].CTo)
	for _, tk := range s.Tokens {
		assert.Equal(t, tk.Text, s.Surface(Tag{CFrom: tk.CFrom, CTo: tk.CTo}))
	}
}

func TestImportTokensCaseInsensitive(t *testing.T) {
	s := NewSentence("I LIKE cats")
	require.NoError(t, s.ImportTokens([]string{"i", "like", "CATS"}))
	assert.Equal(t, 2, s.Tokens[1].CFrom)
	assert.Equal(t, "i", s.Tokens[0].Text, "token text keeps the caller's casing")
}

func TestImportTokensSharedBoundary(t *testing.T) {
	// The search window backs up one rune, so a token may begin on the last
	// rune of its predecessor.
	s := NewSentence("ABC")
	require.NoError(t, s.ImportTokens([]string{"AB", "BC"}))
	assert.Equal(t, 0, s.Tokens[0].CFrom)
	assert.Equal(t, 1, s.Tokens[1].CFrom)
}

func TestImportTokensNotFound(t *testing.T) {
	s := NewSentence("猫が好き")
	err := s.ImportTokens([]string{"猫", "犬"})
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestImportTokensTwiceRejected(t *testing.T) {
	s := NewSentence("猫")
	require.NoError(t, s.ImportTokens([]string{"猫"}))
	assert.Error(t, s.ImportTokens([]string{"猫"}))
}

func TestDocumentIDs(t *testing.T) {
	d := NewDocument("test")
	first := d.NewSentence("一つ目。")
	second := d.NewSentence("二つ目。")
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
	assert.Equal(t, 2, d.Len())

	got, ok := d.Get("2")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestDocumentExplicitAndDuplicateIDs(t *testing.T) {
	d := NewDocument("test")
	named := NewSentence("named")
	named.ID = "s1"
	require.NoError(t, d.AddSentence(named))

	dup := NewSentence("dup")
	dup.ID = "s1"
	assert.Error(t, d.AddSentence(dup))

	// Auto IDs skip over taken ones.
	taken := NewSentence("numbered")
	taken.ID = "1"
	require.NoError(t, d.AddSentence(taken))
	auto := d.NewSentence("auto")
	assert.Equal(t, "2", auto.ID)
}

func TestDocumentRemove(t *testing.T) {
	d := NewDocument("test")
	s := d.NewSentence("doomed")
	removed, ok := d.Remove(s.ID)
	require.True(t, ok)
	assert.Same(t, s, removed)
	assert.Equal(t, 0, d.Len())

	_, ok = d.Remove("missing")
	assert.False(t, ok)
}

func TestConcepts(t *testing.T) {
	s := NewSentence("雨が降る。")
	require.NoError(t, s.ImportTokens([]string{"雨", "が", "降る", "。"}))
	c := s.NewConcept("02756821-v", "降る", 2)
	c.Comment = "to fall (rain)"
	require.Len(t, s.Concepts, 1)
	assert.Equal(t, []int{2}, s.Concepts[0].Tokens)
}

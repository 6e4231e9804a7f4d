package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTSVWritesFiveFiles(t *testing.T) {
	doc := sampleDoc(t)
	doc.Path = t.TempDir()
	require.NoError(t, SaveTSV(doc))

	for _, suffix := range []string{"_sents", "_tokens", "_concepts", "_links", "_tags"} {
		_, err := os.Stat(filepath.Join(doc.Path, "sample"+suffix+".txt"))
		assert.NoError(t, err, suffix)
	}
}

func TestTSVRoundTrip(t *testing.T) {
	doc := sampleDoc(t)
	doc.Path = t.TempDir()
	require.NoError(t, SaveTSV(doc))

	back, err := LoadTSV("sample", doc.Path)
	require.NoError(t, err)
	require.Equal(t, doc.Len(), back.Len())

	orig := doc.Sentences()[0]
	got, ok := back.Get(orig.ID)
	require.True(t, ok)
	assert.Equal(t, orig.Text, got.Text)

	// Token spans are recomputed by import, so they match the originals.
	require.Len(t, got.Tokens, len(orig.Tokens))
	for i := range orig.Tokens {
		assert.Equal(t, orig.Tokens[i].Text, got.Tokens[i].Text)
		assert.Equal(t, orig.Tokens[i].CFrom, got.Tokens[i].CFrom)
		assert.Equal(t, orig.Tokens[i].CTo, got.Tokens[i].CTo)
		assert.Equal(t, orig.Tokens[i].Lemma, got.Tokens[i].Lemma)
		assert.Equal(t, orig.Tokens[i].POS, got.Tokens[i].POS)
	}

	// Token tags, concepts and links come back attached.
	assert.Equal(t, []string{"アメ"}, got.Tokens[0].TagValues("reading"))
	require.Len(t, got.Concepts, 1)
	assert.Equal(t, "02756821-v", got.Concepts[0].Value)
	assert.Equal(t, []int{2}, got.Concepts[0].Tokens)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "weather", got.Tags[0].Value)
	assert.Equal(t, -1, got.Tags[0].CFrom, "empty span field loads as unknown")
}

func TestLoadTSVMissingFiles(t *testing.T) {
	_, err := LoadTSV("nope", t.TempDir())
	assert.Error(t, err)
}

package model

import (
	"fmt"
	"path/filepath"
	"strconv"

	"kotoba/textio"
)

// The TSV layout spreads one document over five tab-separated files that
// share the document name: sentences, tokens, concepts, concept-token links
// and tags.

func tsvPaths(name, path string) (sents, tokens, concepts, links, tags string) {
	sents = filepath.Join(path, name+"_sents.txt")
	tokens = filepath.Join(path, name+"_tokens.txt")
	concepts = filepath.Join(path, name+"_concepts.txt")
	links = filepath.Join(path, name+"_links.txt")
	tags = filepath.Join(path, name+"_tags.txt")
	return
}

func spanField(v int) string {
	if v < 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// SaveTSV writes the document to its Path as a set of TSV files.
func SaveTSV(doc *Document) error {
	sentPath, tokenPath, conceptPath, linkPath, tagPath := tsvPaths(doc.Name, doc.Path)
	var sentRows, tokenRows, conceptRows, linkRows, tagRows [][]string
	for _, sent := range doc.Sentences() {
		sentRows = append(sentRows, []string{sent.ID, sent.Text, sent.Flag, sent.Comment})
		for wid, token := range sent.Tokens {
			tokenRows = append(tokenRows, []string{
				sent.ID, strconv.Itoa(wid), token.Text, token.Lemma, token.POS, token.Comment})
			for _, tag := range token.Tags {
				tagRows = append(tagRows, []string{
					sent.ID, spanField(tag.CFrom), spanField(tag.CTo),
					tag.Value, tag.Type, strconv.Itoa(wid)})
			}
		}
		for cid, concept := range sent.Concepts {
			conceptRows = append(conceptRows, []string{
				sent.ID, strconv.Itoa(cid), concept.Clemma, concept.Value, concept.Comment})
			for _, wid := range concept.Tokens {
				linkRows = append(linkRows, []string{sent.ID, strconv.Itoa(cid), strconv.Itoa(wid)})
			}
		}
		for _, tag := range sent.Tags {
			tagRows = append(tagRows, []string{
				sent.ID, spanField(tag.CFrom), spanField(tag.CTo), tag.Value, tag.Type, ""})
		}
	}
	if err := textio.WriteTSV(sentPath, sentRows); err != nil {
		return err
	}
	if err := textio.WriteTSV(tokenPath, tokenRows); err != nil {
		return err
	}
	if err := textio.WriteTSV(conceptPath, conceptRows); err != nil {
		return err
	}
	if err := textio.WriteTSV(linkPath, linkRows); err != nil {
		return err
	}
	return textio.WriteTSV(tagPath, tagRows)
}

// LoadTSV reads a document written by SaveTSV.
func LoadTSV(name, path string) (*Document, error) {
	sentPath, tokenPath, conceptPath, linkPath, tagPath := tsvPaths(name, path)
	doc := NewDocument(name)
	doc.Path = path

	err := textio.IterTSV(sentPath, func(row []string) error {
		if len(row) < 2 {
			return fmt.Errorf("model: malformed sentence row %v", row)
		}
		sent := NewSentence(row[1])
		sent.ID = row[0]
		if len(row) >= 4 {
			sent.Flag = row[2]
			sent.Comment = row[3]
		}
		return doc.AddSentence(sent)
	})
	if err != nil {
		return nil, err
	}

	// Token rows: sid, wid, text, lemma, pos, comment. Surfaces are collected
	// per sentence and re-imported so spans are recomputed by forward search.
	type tokenRow struct {
		text, lemma, pos, comment string
	}
	sentTokens := make(map[string][]tokenRow)
	err = textio.IterTSV(tokenPath, func(row []string) error {
		if len(row) < 5 {
			return fmt.Errorf("model: malformed token row %v", row)
		}
		tr := tokenRow{text: row[2], lemma: row[3], pos: row[4]}
		if len(row) >= 6 {
			tr.comment = row[5]
		}
		sentTokens[row[0]] = append(sentTokens[row[0]], tr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, sent := range doc.Sentences() {
		rows := sentTokens[sent.ID]
		if len(rows) == 0 {
			continue
		}
		words := make([]string, len(rows))
		for i, tr := range rows {
			words[i] = tr.text
		}
		if err := sent.ImportTokens(words); err != nil {
			return nil, err
		}
		for i := range sent.Tokens {
			sent.Tokens[i].Lemma = rows[i].lemma
			sent.Tokens[i].POS = rows[i].pos
			sent.Tokens[i].Comment = rows[i].comment
		}
	}

	err = textio.IterTSV(conceptPath, func(row []string) error {
		if len(row) < 4 {
			return fmt.Errorf("model: malformed concept row %v", row)
		}
		sent, ok := doc.Get(row[0])
		if !ok {
			return fmt.Errorf("model: concept row for unknown sentence %s", row[0])
		}
		c := sent.NewConcept(row[3], row[2])
		if len(row) >= 5 {
			c.Comment = row[4]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = textio.IterTSV(linkPath, func(row []string) error {
		if len(row) < 3 {
			return fmt.Errorf("model: malformed link row %v", row)
		}
		sent, ok := doc.Get(row[0])
		if !ok {
			return fmt.Errorf("model: link row for unknown sentence %s", row[0])
		}
		cid, err := strconv.Atoi(row[1])
		if err != nil || cid < 0 || cid >= len(sent.Concepts) {
			return fmt.Errorf("model: link row with bad concept index %v", row)
		}
		wid, err := strconv.Atoi(row[2])
		if err != nil {
			return fmt.Errorf("model: link row with bad token index %v", row)
		}
		sent.Concepts[cid].Tokens = append(sent.Concepts[cid].Tokens, wid)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = textio.IterTSV(tagPath, func(row []string) error {
		if len(row) < 5 {
			return fmt.Errorf("model: malformed tag row %v", row)
		}
		sent, ok := doc.Get(row[0])
		if !ok {
			return fmt.Errorf("model: tag row for unknown sentence %s", row[0])
		}
		cfrom, cto := -1, -1
		if row[1] != "" {
			cfrom, _ = strconv.Atoi(row[1])
		}
		if row[2] != "" {
			cto, _ = strconv.Atoi(row[2])
		}
		if len(row) >= 6 && row[5] != "" {
			wid, err := strconv.Atoi(row[5])
			if err != nil || wid < 0 || wid >= len(sent.Tokens) {
				return fmt.Errorf("model: tag row with bad token index %v", row)
			}
			token := &sent.Tokens[wid]
			token.Tags = append(token.Tags, Tag{Type: row[4], Value: row[3], CFrom: cfrom, CTo: cto})
			return nil
		}
		sent.NewTag(row[4], row[3], cfrom, cto)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

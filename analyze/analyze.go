// Package analyze ties a tagger backend to the output renderers: it parses
// raw text into a document and renders it as plain text, HTML ruby markup,
// tab-separated token records or annotation-model JSON.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kotoba/model"
	"kotoba/tokenize"
)

// Output formats accepted by Render and Analyze.
const (
	FormatTxt  = "txt"
	FormatHTML = "html"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for a format name Render does not know.
var ErrUnknownFormat = errors.New("analyze: unknown format")

// Formats lists the accepted output format names.
func Formats() []string {
	return []string{FormatTxt, FormatHTML, FormatCSV, FormatJSON}
}

// Render serializes a parsed document in the named format.
//
//	txt   one sentence per line, surfaces joined with single spaces
//	html  one ruby-annotated sentence per line, <br/> separated
//	csv   ten tab-separated fields per token, blank line between sentences
//	json  annotation model, one JSON object per sentence (JSONL)
func Render(doc *tokenize.Doc, format string) (string, error) {
	switch format {
	case FormatTxt:
		var b strings.Builder
		for _, sent := range doc.Sents {
			b.WriteString(sent.String())
			b.WriteByte('\n')
		}
		return b.String(), nil
	case FormatHTML:
		var b strings.Builder
		for _, sent := range doc.Sents {
			b.WriteString(sent.Ruby())
			b.WriteString("<br/>\n")
		}
		return b.String(), nil
	case FormatCSV:
		var b strings.Builder
		for _, sent := range doc.Sents {
			b.WriteString(sent.CSV())
		}
		return b.String(), nil
	case FormatJSON:
		ttl, err := doc.ToTTL()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		if err := model.WriteJSON(&b, ttl); err != nil {
			return "", err
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Analyze parses text with the given parser and renders it in the named
// format. The name labels the document in JSON output.
func Analyze(ctx context.Context, p *tokenize.Parser, name, text, format string) (string, error) {
	doc, err := p.ParseDoc(ctx, name, text)
	if err != nil {
		return "", err
	}
	return Render(doc, format)
}

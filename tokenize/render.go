package tokenize

import "strings"

// Joining ruby fragments with spaces leaves gaps around punctuation that
// Japanese typography closes up.
var rubySpacing = strings.NewReplacer(
	" 。", "。",
	"「 ", "「",
	" 」", "」",
	" 、 ", "、",
	"（ ", "（",
	" ）", "）",
)

// Ruby renders the sentence as HTML with ruby glosses over tokens whose
// reading differs from their surface.
func (s *Sent) Ruby() string {
	frags := make([]string, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		if t.IsEOS() {
			continue
		}
		frags = append(frags, t.Record.Ruby())
	}
	return rubySpacing.Replace(strings.Join(frags, " "))
}

// CSV renders the sentence as one tagger record per line, ten tab-separated
// fields each, with a trailing blank line as the sentence separator.
func (s *Sent) CSV() string {
	var b strings.Builder
	for _, t := range s.Tokens {
		if t.IsEOS() {
			continue
		}
		b.WriteString(t.Record.CSV())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

/*
Package analyze turns a raw text document into an ordered list of uncommon
words, each paired with a definition and an example sentence drawn from the
document itself.

The pipeline is a composition of pure transformations: Tokenize produces
lowercase word tokens, Rank filters and orders them by the (count asc,
length desc, lexicographic asc) chain, and the Analyzer assembles one
record per surviving word using the original-case surface form. Definitions
come from whatever Definer is injected; everything else has no external
state, so identical input always yields identical output.
*/
package analyze

import (
	"time"

	"github.com/charmbracelet/log"
)

// Definer resolves a normalized word to a definition string.
// It never fails; a miss is represented by a sentinel definition.
type Definer interface {
	Lookup(word string) string
}

// UncommonWord is one output record handed to the presentation layer.
type UncommonWord struct {
	// Word is the original-case surface form as it first appeared in
	// the source text.
	Word string
	// Definition is a dictionary definition or the merger's
	// "not in your dictionary" sentinel.
	Definition string
	// ExampleFromText is a sentence from the document or the NoExample
	// sentinel.
	ExampleFromText string
}

// Analyzer assembles analysis results from the tokenizer, the ranker, and
// an injected dictionary.
type Analyzer struct {
	dict Definer
	opts Options
}

// NewAnalyzer creates an Analyzer with the given dictionary and ranking
// policy.
func NewAnalyzer(dict Definer, opts Options) *Analyzer {
	return &Analyzer{dict: dict, opts: opts}
}

// Analyze runs the full pipeline over one document. Empty text yields an
// empty result, never an error. Output order equals the ranker's order and
// is stable for identical input.
func (a *Analyzer) Analyze(text string) []UncommonWord {
	if text == "" {
		return []UncommonWord{}
	}

	start := time.Now()
	tokens := Tokenize(text)
	ranked := Rank(tokens, a.opts)
	surfaces := surfaceForms(text)

	records := make([]UncommonWord, 0, len(ranked))
	for _, wc := range ranked {
		surface := surfaces[wc.Word]
		if surface == "" {
			surface = wc.Word
		}
		records = append(records, UncommonWord{
			Word:            surface,
			Definition:      a.dict.Lookup(wc.Word),
			ExampleFromText: ExtractExample(text, wc.Word),
		})
	}

	log.Debugf("Analyzed %d tokens into %d records in %v", len(tokens), len(records), time.Since(start))
	return records
}

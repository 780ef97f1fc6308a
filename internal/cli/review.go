// Package cli implements the interactive terminal flows: reviewing analysis
// candidates into the personal dictionary and one-off word lookups.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ebmartin/uncommon/internal/logger"
	"github.com/ebmartin/uncommon/internal/utils"
	"github.com/ebmartin/uncommon/pkg/analyze"
	"github.com/ebmartin/uncommon/pkg/dictionary"
)

// Reviewer walks the user through analysis candidates one at a time,
// offering to save each into the personal dictionary.
type Reviewer struct {
	dict      *dictionary.Merger
	opts      analyze.Options
	maxNearby int
	reader    *bufio.Reader
	lg        *log.Logger
}

// NewReviewer handles initialization of the Reviewer with basic parameters
func NewReviewer(dict *dictionary.Merger, opts analyze.Options, maxNearby int) *Reviewer {
	return &Reviewer{
		dict:      dict,
		opts:      opts,
		maxNearby: maxNearby,
		reader:    bufio.NewReader(os.Stdin),
		lg:        logger.New("review"),
	}
}

// Start analyzes the document and begins the review loop.
// Each candidate is shown with its definition and example sentence; the
// user can add it, skip it, or quit. Adds persist immediately.
func (r *Reviewer) Start(text string) error {
	tokens := analyze.Tokenize(text)
	records := analyze.NewAnalyzer(r.dict, r.opts).Analyze(text)

	if len(records) == 0 {
		r.lg.Warn("No candidate words found in this document")
		return nil
	}

	r.lg.Printf("Document has %s tokens, %d candidates to review", utils.FormatWithCommas(len(tokens)), len(records))
	r.lg.Print("For each word: [a]dd to personal dictionary / [s]kip / [q]uit")

	added := 0
	for i, rec := range records {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", rec.Word)
		r.lg.Printf("")
		r.lg.Printf("%3d/%d  %s", i+1, len(records), clWord)
		r.lg.Printf("       definition: %s", rec.Definition)
		r.lg.Printf("       example:    %s", rec.ExampleFromText)

		choice, err := r.prompt("> ")
		if err != nil {
			return err
		}

		switch choice {
		case "q", "quit":
			r.lg.Printf("Review stopped, %d words added", added)
			return nil
		case "a", "add":
			if err := r.addRecord(rec); err != nil {
				r.lg.Errorf("Could not save '%s': %v", rec.Word, err)
				continue
			}
			added++
		default:
			// anything else is a skip
		}
	}

	r.lg.Printf("Review finished, %d words added", added)
	return nil
}

// addRecord saves one candidate. When no tier has a definition yet, the
// user is asked to type one; an empty answer skips the word.
func (r *Reviewer) addRecord(rec analyze.UncommonWord) error {
	definition := rec.Definition
	if definition == dictionary.NotInDictionary {
		answer, err := r.prompt("no definition yet, type one (empty to skip): ")
		if err != nil {
			return err
		}
		if answer == "" {
			return nil
		}
		definition = answer
	}
	return r.dict.Upsert(rec.Word, definition)
}

// prompt reads one trimmed line from stdin.
func (r *Reviewer) prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := r.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ShowDefinition prints the merged definition for one word, with nearby
// dictionary entries when the lookup misses.
func ShowDefinition(dict *dictionary.Merger, word string, maxNearby int) {
	w := utils.NormalizeWord(word)
	if !utils.IsWordToken(w) {
		log.Errorf("Not a word: %q", word)
		return
	}

	log.Printf("%s: %s", w, dict.Lookup(w))
	if dict.Defined(w) {
		return
	}
	if nearby := dict.Nearby(w, maxNearby); len(nearby) > 0 {
		log.Printf("nearby entries: %s", strings.Join(nearby, ", "))
	}
}

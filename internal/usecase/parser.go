package usecase

import (
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/buynary/backend/internal/domain"
)

// Package-level compiled regex patterns for quantity and unit extraction.
// The transcript is lowercased at intake, so the patterns match lowercase
// only. The gram pattern deliberately carries no trailing word boundary to
// keep the historical extraction behavior ("500g" and "500 grams" both hit).
var (
	// Matches "2 kg", "2.5kg", "1 kilo", "3 kilograms"
	kilogramPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:kg|kilo|kilogram)`)

	// Matches "500g", "250 gram", "750 grams"
	gramPattern = regexp.MustCompile(`(\d+)\s*(?:g|gram|grams)`)

	// Matches an integer count at the very start of a segment
	leadingCountPattern = regexp.MustCompile(`^(\d+)\s+`)

	// Matches the weight-style quantity tokens stripped from item names
	weightTokenPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:kg|kilo|kilogram|g|gram|grams)`)

	// Matches the leading-integer token stripped from item names
	leadingCountToken = regexp.MustCompile(`^\d+\s+`)

	// Splits a transcript into item segments on the spoken connective "plus"
	segmentPattern = regexp.MustCompile(`\bplus\b`)
)

// ParserConfig holds configuration for the transcript parser
type ParserConfig struct {
	// Lexicon overrides the built-in vocabulary tables when non-nil
	Lexicon            *Lexicon
	EnableDebugLogging bool
}

// TranscriptParser turns one free-text grocery transcript into an ordered
// sequence of structured grocery items. Parsing is pure: the same transcript
// always yields the same items.
type TranscriptParser struct {
	lexicon            Lexicon
	numberWordPattern  *regexp.Regexp
	packagedKeys       []string
	enableDebugLogging bool
}

// NewTranscriptParser creates a transcript parser with the given configuration
func NewTranscriptParser(config ParserConfig) *TranscriptParser {
	lexicon := DefaultLexicon()
	if config.Lexicon != nil {
		lexicon = *config.Lexicon
	}

	// Fix the packaged-key probe order up front: longest key first, so
	// "water bottles" is checked before "water" and lookups stay
	// deterministic regardless of map iteration order.
	packagedKeys := make([]string, 0, len(lexicon.PackagedItems))
	for key := range lexicon.PackagedItems {
		packagedKeys = append(packagedKeys, key)
	}
	sort.Slice(packagedKeys, func(i, j int) bool {
		if len(packagedKeys[i]) != len(packagedKeys[j]) {
			return len(packagedKeys[i]) > len(packagedKeys[j])
		}
		return packagedKeys[i] < packagedKeys[j]
	})

	return &TranscriptParser{
		lexicon:            lexicon,
		numberWordPattern:  compileNumberWordPattern(lexicon.NumberWords),
		packagedKeys:       packagedKeys,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// compileNumberWordPattern builds a whole-word alternation over the number
// vocabulary. Longer words sort first so prefix pairs ("seven"/"seventeen")
// cannot shadow each other. An empty vocabulary yields nil: an empty
// alternation would match the empty string at every word boundary.
func compileNumberWordPattern(numberWords map[string]int) *regexp.Regexp {
	if len(numberWords) == 0 {
		return nil
	}
	words := make([]string, 0, len(numberWords))
	for word := range numberWords {
		words = append(words, regexp.QuoteMeta(word))
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return regexp.MustCompile(`\b(?:` + strings.Join(words, "|") + `)\b`)
}

// Parse converts a transcript into grocery items, one per non-empty
// "plus"-delimited segment, in segment order. Malformed segments never fail:
// unparseable quantities degrade to a piece count of 1 and segments whose
// name normalizes to empty are dropped.
func (p *TranscriptParser) Parse(transcript string) []domain.GroceryItem {
	normalized := p.convertNumberWords(transcript)

	var items []domain.GroceryItem
	for _, segment := range segmentPattern.Split(normalized, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		item, ok := p.parseSegment(segment)
		if !ok {
			continue
		}

		if p.enableDebugLogging {
			log.Printf("[PARSE] Segment %q -> %+v", segment, item)
		}
		items = append(items, item)
	}

	return items
}

// convertNumberWords lowercases the transcript and replaces whole-word
// number names with their digit form. Unknown words stay untouched, so
// "tennis" never becomes "10nis".
func (p *TranscriptParser) convertNumberWords(text string) string {
	lowered := strings.ToLower(text)
	if p.numberWordPattern == nil {
		return lowered
	}
	return p.numberWordPattern.ReplaceAllStringFunc(lowered, func(word string) string {
		return strconv.Itoa(p.lexicon.NumberWords[word])
	})
}

// parseSegment extracts one grocery item from a segment. Quantity detection
// runs in fixed priority order: explicit kilograms, explicit grams, leading
// integer count, then a default count of 1.
func (p *TranscriptParser) parseSegment(segment string) (domain.GroceryItem, bool) {
	name := normalizeItemName(segment)
	if name == "" {
		return domain.GroceryItem{}, false
	}

	if m := kilogramPattern.FindStringSubmatch(segment); m != nil {
		weight, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return domain.NewWeightItem(name, weight, domain.WeightKilograms), true
		}
	}

	if m := gramPattern.FindStringSubmatch(segment); m != nil {
		grams, err := strconv.Atoi(m[1])
		if err == nil {
			return domain.NewWeightItem(name, float64(grams), domain.WeightGrams), true
		}
	}

	count := 1
	if m := leadingCountPattern.FindStringSubmatch(segment); m != nil {
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			count = parsed
		}
	}

	// Packaged goods collapse to pack counts before the weight heuristic
	// gets a say: "15 eggs" is two dozen-packs, never 15 kg.
	if size, ok := p.packSize(name); ok {
		return domain.NewPieceItem(name, packCount(count, size)), true
	}

	// A bare count above 1 on a weighed commodity means kilograms; a count
	// of exactly 1 is assumed to mean pieces.
	if count > 1 && p.isWeightItem(name) {
		return domain.NewWeightItem(name, float64(count), domain.WeightKilograms), true
	}

	return domain.NewPieceItem(name, count), true
}

// normalizeItemName strips quantity/unit tokens from a segment, leaving the
// item name. Returns "" for segments that were nothing but quantity tokens.
func normalizeItemName(segment string) string {
	name := weightTokenPattern.ReplaceAllString(segment, "")
	name = leadingCountToken.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// packSize looks up the pack size for a packaged good, matching keys as
// substrings of the item name.
func (p *TranscriptParser) packSize(name string) (int, bool) {
	for _, key := range p.packagedKeys {
		if strings.Contains(name, key) {
			return p.lexicon.PackagedItems[key], true
		}
	}
	return 0, false
}

// packCount converts a requested unit count into a pack count: anything up
// to one pack collapses to a single pack, beyond that packs are rounded up.
func packCount(requested, size int) int {
	if size < 1 || requested <= size {
		return 1
	}
	return (requested + size - 1) / size
}

func (p *TranscriptParser) isWeightItem(name string) bool {
	for _, item := range p.lexicon.WeightItems {
		if strings.Contains(name, item) {
			return true
		}
	}
	return false
}

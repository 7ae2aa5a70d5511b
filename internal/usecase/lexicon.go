package usecase

// Lexicon holds the vocabulary tables the transcript parser works from.
// They are plain data so a deployment can extend them for its locale or
// catalog without touching parser logic.
type Lexicon struct {
	// NumberWords maps spoken number names to their digit value
	NumberWords map[string]int
	// PackagedItems maps a packaged-good key (matched as a substring of the
	// item name) to its conventional pack size
	PackagedItems map[string]int
	// WeightItems lists commodities that shoppers order by weight; a bare
	// count above 1 on one of these is reinterpreted as kilograms
	WeightItems []string
}

// defaultNumberWords covers spoken quantities up to fifty
var defaultNumberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50,
}

// defaultPackagedItems models goods sold in fixed-size packs: "15 eggs"
// means two dozen-packs, not fifteen single eggs
var defaultPackagedItems = map[string]int{
	"eggs":          12,
	"egg":           12,
	"water bottles": 6,
	"water":         6,
	"yogurt":        1,
}

// defaultWeightItems are commodities conventionally bought by the kilogram
var defaultWeightItems = []string{
	"chicken", "meat", "beef", "lamb", "fish", "salmon", "shrimp",
	"tomatoes", "potatoes", "onions", "carrots", "apples", "bananas",
	"oranges", "rice", "flour", "sugar",
}

// DefaultLexicon returns the built-in spoken-English grocery vocabulary
func DefaultLexicon() Lexicon {
	numberWords := make(map[string]int, len(defaultNumberWords))
	for word, value := range defaultNumberWords {
		numberWords[word] = value
	}

	packagedItems := make(map[string]int, len(defaultPackagedItems))
	for key, size := range defaultPackagedItems {
		packagedItems[key] = size
	}

	weightItems := make([]string, len(defaultWeightItems))
	copy(weightItems, defaultWeightItems)

	return Lexicon{
		NumberWords:   numberWords,
		PackagedItems: packagedItems,
		WeightItems:   weightItems,
	}
}

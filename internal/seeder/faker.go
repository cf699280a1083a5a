package seeder

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var categories = []string{"Men", "Women", "Girls", "Boys", "Accessories"}

var sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

var colors = []string{"Red", "Blue", "Green", "Black", "White", "Yellow"}

var productTypes = []string{"Shirt", "Pants", "Jacket", "Hat", "Dress", "Shoes"}

var words = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "tempor", "incididunt", "labore", "dolore", "magna", "aliqua", "enim",
	"minim", "veniam", "nostrud", "exercitation", "ullamco", "laboris", "aliquip",
	"commodo", "consequat", "irure", "voluptate", "velit", "cillum", "fugiat",
	"nulla", "pariatur", "occaecat", "cupidatat", "proident", "culpa", "officia",
	"deserunt", "mollit", "anim", "classic", "urban", "summer", "winter", "vintage",
	"denim", "cotton", "linen", "wool", "silk", "cozy", "slim", "relaxed", "bold",
	"soft", "everyday", "weekend", "street", "casual", "tailored", "sporty", "modern",
}

// DataGenerator produces synthetic catalog values from fixed vocabularies.
// The vocabularies are exported fields so callers can narrow them.
type DataGenerator struct {
	rand  *rand.Rand
	title cases.Caser

	Categories   []string
	Sizes        []string
	Colors       []string
	ProductTypes []string
	Words        []string
}

// NewDataGenerator returns a generator seeded with seed, or with the clock when seed is 0.
func NewDataGenerator(seed int64) *DataGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DataGenerator{
		rand:         rand.New(rand.NewSource(seed)),
		title:        cases.Title(language.English),
		Categories:   categories,
		Sizes:        sizes,
		Colors:       colors,
		ProductTypes: productTypes,
		Words:        words,
	}
}

func (g *DataGenerator) pick(pool []string) string {
	return pool[g.rand.Intn(len(pool))]
}

// IntRange returns a uniform integer in [min, max].
func (g *DataGenerator) IntRange(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

// Price returns a uniform value in [min, max] rounded to cents.
func (g *DataGenerator) Price(min, max float64) float64 {
	p := math.Round((min+g.rand.Float64()*(max-min))*100) / 100
	return math.Min(math.Max(p, min), max)
}

func (g *DataGenerator) Word() string {
	return g.pick(g.Words)
}

func (g *DataGenerator) Capitalized(word string) string {
	return g.title.String(word)
}

// Sentence joins wordCount random words, capitalizes the first and ends with a period.
func (g *DataGenerator) Sentence(wordCount int) string {
	parts := make([]string, wordCount)
	for i := range parts {
		parts[i] = g.Word()
	}
	if len(parts) > 0 {
		parts[0] = g.Capitalized(parts[0])
	}
	return strings.Join(parts, " ") + "."
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

package seeder

import (
	"errors"
	"fmt"
)

const (
	MaxNameLength = 100

	MinImages   = 2
	MaxImages   = 4
	MinVariants = 1
	MaxVariants = 3

	MaxStock = 500
	MinPrice = 10.00
	MaxPrice = 300.00

	descriptionWords = 10
)

// ErrExhaustedCombinations is returned when more distinct (size, color)
// pairs are requested than the vocabularies can form.
var ErrExhaustedCombinations = errors.New("exhausted size/color combinations")

type sizeColor struct {
	size  string
	color string
}

// Products generates n product records.
func (g *DataGenerator) Products(n int) []Product {
	products := make([]Product, 0, n)
	for i := 0; i < n; i++ {
		category := g.pick(g.Categories)
		products = append(products, Product{
			Name:        truncate(g.Capitalized(g.Word())+" "+g.pick(g.ProductTypes), MaxNameLength),
			Category:    category,
			ImageURL:    fmt.Sprintf("https://source.unsplash.com/400x400/?clothes,%s", category),
			Description: g.Sentence(descriptionWords),
		})
	}
	return products
}

// Images generates between MinImages and MaxImages images per product.
func (g *DataGenerator) Images(productIDs []int64) []ProductImage {
	images := make([]ProductImage, 0, len(productIDs)*MaxImages)
	for _, id := range productIDs {
		count := g.IntRange(MinImages, MaxImages)
		for i := 0; i < count; i++ {
			images = append(images, ProductImage{
				ProductID: id,
				ImageURL:  fmt.Sprintf("https://source.unsplash.com/400x400/?fashion,%s", g.pick(g.ProductTypes)),
			})
		}
	}
	return images
}

// Variants generates between MinVariants and MaxVariants variants per
// product, each with a (size, color) pair unique within that product.
func (g *DataGenerator) Variants(productIDs []int64) ([]ProductVariant, error) {
	variants := make([]ProductVariant, 0, len(productIDs)*MaxVariants)
	for _, id := range productIDs {
		pairs, err := g.uniquePairs(g.IntRange(MinVariants, MaxVariants))
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", id, err)
		}
		for _, p := range pairs {
			variants = append(variants, ProductVariant{
				ProductID: id,
				Size:      p.size,
				Color:     p.color,
				Stock:     g.IntRange(0, MaxStock),
				Price:     g.Price(MinPrice, MaxPrice),
			})
		}
	}
	return variants, nil
}

// uniquePairs draws want distinct (size, color) pairs. Rejection sampling
// runs for at most as many draws as there are combinations; any pairs still
// missing are then taken from the unused combinations directly.
func (g *DataGenerator) uniquePairs(want int) ([]sizeColor, error) {
	space := len(g.Sizes) * len(g.Colors)
	if want > space {
		return nil, fmt.Errorf("%w: want %d, only %d exist", ErrExhaustedCombinations, want, space)
	}

	seen := make(map[sizeColor]bool, want)
	pairs := make([]sizeColor, 0, want)

	for attempts := 0; len(pairs) < want && attempts < space; attempts++ {
		p := sizeColor{size: g.pick(g.Sizes), color: g.pick(g.Colors)}
		if seen[p] {
			continue
		}
		seen[p] = true
		pairs = append(pairs, p)
	}

	if len(pairs) < want {
		var unused []sizeColor
		for _, s := range g.Sizes {
			for _, c := range g.Colors {
				if p := (sizeColor{size: s, color: c}); !seen[p] {
					unused = append(unused, p)
				}
			}
		}
		if len(unused) < want-len(pairs) {
			return nil, fmt.Errorf("%w: want %d, vocabularies repeat values", ErrExhaustedCombinations, want)
		}
		g.rand.Shuffle(len(unused), func(i, j int) { unused[i], unused[j] = unused[j], unused[i] })
		pairs = append(pairs, unused[:want-len(pairs)]...)
	}

	return pairs, nil
}

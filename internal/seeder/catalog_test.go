package seeder

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func inSet(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func TestProductsRespectFieldRules(t *testing.T) {
	g := NewDataGenerator(1)
	products := g.Products(500)
	require.Len(t, products, 500)

	for _, p := range products {
		require.LessOrEqual(t, utf8.RuneCountInString(p.Name), MaxNameLength)
		require.True(t, inSet(categories, p.Category), "unexpected category %q", p.Category)
		require.Equal(t, "https://source.unsplash.com/400x400/?clothes,"+p.Category, p.ImageURL)
		require.Len(t, strings.Fields(p.Description), descriptionWords)
		require.True(t, strings.HasSuffix(p.Description, "."))

		parts := strings.SplitN(p.Name, " ", 2)
		require.Len(t, parts, 2)
		require.True(t, inSet(productTypes, parts[1]), "unexpected product type in %q", p.Name)
		require.Equal(t, strings.ToUpper(parts[0][:1]), parts[0][:1])
	}
}

func TestProductNameIsTruncated(t *testing.T) {
	g := NewDataGenerator(1)
	g.Words = []string{strings.Repeat("x", 150)}

	for _, p := range g.Products(5) {
		require.Equal(t, MaxNameLength, utf8.RuneCountInString(p.Name))
	}
}

func TestImagesPerProduct(t *testing.T) {
	g := NewDataGenerator(7)
	ids := []int64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

	perParent := map[int64]int{}
	for _, img := range g.Images(ids) {
		perParent[img.ProductID]++
		require.True(t, strings.HasPrefix(img.ImageURL, "https://source.unsplash.com/400x400/?fashion,"))
	}

	require.Len(t, perParent, len(ids))
	for id, n := range perParent {
		require.GreaterOrEqual(t, n, MinImages, "product %d", id)
		require.LessOrEqual(t, n, MaxImages, "product %d", id)
	}
}

func TestVariantsAreUniqueAndInRange(t *testing.T) {
	g := NewDataGenerator(3)
	ids := make([]int64, 300)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	variants, err := g.Variants(ids)
	require.NoError(t, err)

	type key struct {
		id          int64
		size, color string
	}
	seen := map[key]bool{}
	perParent := map[int64]int{}

	for _, v := range variants {
		k := key{v.ProductID, v.Size, v.Color}
		require.False(t, seen[k], "duplicate pair %+v", k)
		seen[k] = true
		perParent[v.ProductID]++

		require.True(t, inSet(sizes, v.Size))
		require.True(t, inSet(colors, v.Color))
		require.GreaterOrEqual(t, v.Stock, 0)
		require.LessOrEqual(t, v.Stock, MaxStock)
		require.GreaterOrEqual(t, v.Price, MinPrice)
		require.LessOrEqual(t, v.Price, MaxPrice)
		cents := v.Price * 100
		require.InDelta(t, math.Round(cents), cents, 1e-6, "price %v has more than two fraction digits", v.Price)
	}

	require.Len(t, perParent, len(ids))
	for id, n := range perParent {
		require.GreaterOrEqual(t, n, MinVariants, "product %d", id)
		require.LessOrEqual(t, n, MaxVariants, "product %d", id)
	}
}

func TestUniquePairsSmallSpace(t *testing.T) {
	g := NewDataGenerator(11)
	g.Sizes = []string{"S", "M", "L"}
	g.Colors = []string{"Red", "Blue"}

	for i := 0; i < 200; i++ {
		pairs, err := g.uniquePairs(3)
		require.NoError(t, err)
		require.Len(t, pairs, 3)

		seen := map[sizeColor]bool{}
		for _, p := range pairs {
			require.False(t, seen[p])
			seen[p] = true
		}
	}
}

func TestUniquePairsCanTakeWholeSpace(t *testing.T) {
	g := NewDataGenerator(5)
	g.Sizes = []string{"S", "M", "L"}
	g.Colors = []string{"Red", "Blue"}

	pairs, err := g.uniquePairs(6)
	require.NoError(t, err)
	require.Len(t, pairs, 6)
}

func TestUniquePairsExhausted(t *testing.T) {
	g := NewDataGenerator(5)
	g.Sizes = []string{"S"}
	g.Colors = []string{"Red", "Blue"}

	_, err := g.uniquePairs(3)
	require.True(t, errors.Is(err, ErrExhaustedCombinations))

	g.Colors = nil
	_, err = g.Variants([]int64{1})
	require.ErrorIs(t, err, ErrExhaustedCombinations)
}

func TestSeededGeneratorsAreReproducible(t *testing.T) {
	a := NewDataGenerator(99).Products(20)
	b := NewDataGenerator(99).Products(20)
	require.Equal(t, a, b)
}

package analysis

import (
	"sort"
	"strings"
	"unicode"

	"bilancio/internal/core"
)

// Subcategory labels for the classified category families.
const (
	SubGroceries        = "Groceries"
	SubOtherFood        = "Other Food Sources"
	SubPublicTransport  = "Public Transportation"
	SubPrivateTransport = "Private Transportation"
	SubOtherSubs        = "Other Subscriptions"
)

var (
	foodCategoryPatterns      = []string{"food", "groceries", "dining"}
	transportCategoryPatterns = []string{"transport"}
	hobbiesCategoryPatterns   = []string{"hobbies", "subscription", "entertainment"}

	groceryKeywords = []string{
		"grocery", "groceries", "supermarket", "market", "store", "food store",
	}
	publicTransportKeywords = []string{
		"bus", "metro", "subway", "train", "tram", "transit",
		"rail", "metro card", "transit pass", "public transport", "rail pass",
	}
	hobbiesKeywords = []struct {
		sub      string
		keywords []string
	}{
		{"Streaming", []string{"streaming", "music subscription", "video subscription"}},
		{"Fitness", []string{"gym", "fitness", "yoga", "pilates", "crossfit", "workout", "health club", "sports club"}},
		{"Gaming", []string{"game pass", "gaming", "game subscription", "video game"}},
		{"Educational", []string{"online course", "learning", "education", "course"}},
		{"Books", []string{"book", "books", "reading", "audiobook", "ebook", "magazine"}},
		{"News & Media", []string{"news", "newspaper", "publication"}},
		{"Professional", []string{"creative cloud", "workspace", "cloud storage", "productivity"}},
	}
)

// Subcategory classifies a transaction into a subcategory from its category
// and description. Food, transportation and hobbies/subscription categories
// get keyword-driven subcategories; any other category maps to itself.
func Subcategory(category, description string) string {
	lower := strings.ToLower(category)
	switch {
	case matchesAny(lower, foodCategoryPatterns):
		return classifyFood(description)
	case matchesAny(lower, transportCategoryPatterns):
		return classifyTransportation(description)
	case matchesAny(lower, hobbiesCategoryPatterns):
		return classifyHobbies(description)
	default:
		return category
	}
}

// SubcategoryBreakdown sums absolute expense values per subcategory for
// transactions whose category contains the given name (case-insensitive),
// with each subcategory's percentage of the category total. Sorted by amount
// descending; ties keep a stable order by subcategory name.
func SubcategoryBreakdown(txs []core.Transaction, category string) []core.SubcategoryShare {
	needle := strings.ToLower(category)
	totals := make(map[string]int64)
	var categoryTotal int64
	for _, tx := range txs {
		if !tx.IsExpense() || !strings.Contains(strings.ToLower(tx.Category), needle) {
			continue
		}
		cents := tx.Value.Abs().Cents
		totals[Subcategory(tx.Category, tx.Description)] += cents
		categoryTotal += cents
	}

	out := make([]core.SubcategoryShare, 0, len(totals))
	for sub, cents := range totals {
		share := core.SubcategoryShare{
			Subcategory: sub,
			Amount:      core.Money{Cents: cents},
		}
		if categoryTotal > 0 {
			share.Percentage = float64(cents) / float64(categoryTotal) * 100
		}
		out = append(out, share)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents > out[j].Amount.Cents
		}
		return out[i].Subcategory < out[j].Subcategory
	})
	return out
}

func classifyFood(description string) string {
	desc := normalizeDescription(description)
	if matchesAny(desc, groceryKeywords) {
		return SubGroceries
	}
	return SubOtherFood
}

func classifyTransportation(description string) string {
	desc := normalizeDescription(description)
	if matchesAny(desc, publicTransportKeywords) {
		return SubPublicTransport
	}
	return SubPrivateTransport
}

func classifyHobbies(description string) string {
	desc := normalizeDescription(description)
	for _, group := range hobbiesKeywords {
		if matchesAny(desc, group.keywords) {
			return group.sub
		}
	}
	return SubOtherSubs
}

// normalizeDescription lowercases and replaces punctuation with spaces so
// keyword matching ignores case and symbols.
func normalizeDescription(s string) string {
	lower := strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lower)
}

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

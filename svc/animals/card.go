package animals

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/petadopt/pkg/sanitizer"
)

// Card fallbacks for listings with missing data.
const (
	FallbackName        = "Name unavailable"
	FallbackSpecies     = "Unknown species"
	FallbackBreed       = "Unknown breed"
	FallbackDescription = "No description available"
	FallbackCity        = "Unknown city"
	DefaultImageURL     = "https://images.unsplash.com/photo-1560807707-8cc77767d783?w=400&h=300&fit=crop"

	// DescriptionPreviewLen is the rune count kept in card descriptions.
	DescriptionPreviewLen = 100
)

var descriptionPreview = sanitizer.Compose(
	sanitizer.StripTags,
	func(s string) string { return sanitizer.Truncate(s, DescriptionPreviewLen, "...") },
)

// Card is the display form of a listing. All strings are plain text;
// escaping is left to the renderer.
type Card struct {
	ID          int64
	Name        string
	Species     string
	Breed       string
	Age         int
	Description string
	City        string
	PostalCode  string
	Location    string
	ImageURL    string
	OwnerEmail  string
}

// NewCard applies fallbacks and formatting to a listing.
func NewCard(a Animal) Card {
	c := Card{
		ID:         a.ID,
		Name:       orDefault(a.Name, FallbackName),
		Species:    orDefault(a.Species, FallbackSpecies),
		Breed:      orDefault(a.Breed, FallbackBreed),
		Age:        max(a.Age, 0),
		City:       orDefault(a.City, FallbackCity),
		PostalCode: strings.TrimSpace(a.PostalCode),
		ImageURL:   orDefault(a.ImageURL, DefaultImageURL),
		OwnerEmail: strings.TrimSpace(a.OwnerEmail),
	}
	c.Description = orDefault(descriptionPreview(a.Description), FallbackDescription)
	c.Location = c.City
	if c.PostalCode != "" {
		c.Location += ", " + c.PostalCode
	}
	return c
}

// NewCards maps listings to cards, preserving order.
func NewCards(list []Animal) []Card {
	cards := make([]Card, 0, len(list))
	for _, a := range list {
		cards = append(cards, NewCard(a))
	}
	return cards
}


// Highlight escapes text and wraps case-insensitive occurrences of query in
// <mark>. Queries of two characters or fewer only escape.
func Highlight(text, query string) string {
	query = strings.TrimSpace(query)
	if len([]rune(query)) <= 2 {
		return sanitizer.EscapeHTML(text)
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(sanitizer.EscapeHTML(text[last:loc[0]]))
		b.WriteString("<mark>")
		b.WriteString(sanitizer.EscapeHTML(text[loc[0]:loc[1]]))
		b.WriteString("</mark>")
		last = loc[1]
	}
	b.WriteString(sanitizer.EscapeHTML(text[last:]))
	return b.String()
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}

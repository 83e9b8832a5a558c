package core

import (
	"strings"
)

// Variant tags the kind of catalog entity a Book is.
type Variant string

const (
	// VariantStandard is a plain book without a variant-specific attribute.
	VariantStandard Variant = "standard"

	// VariantFiction is a fiction book; its detail is the fiction type (e.g. "Novel").
	VariantFiction Variant = "fiction"

	// VariantNonFiction is a non-fiction book; its detail is the subject (e.g. "Physics").
	VariantNonFiction Variant = "non-fiction"
)

// ParseVariant maps the librarian's book type input to a Variant.
// It accepts the menu shorthand "F"/"N" and the long names, ignoring case.
// Anything else yields VariantStandard and false.
func ParseVariant(input string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "f", string(VariantFiction):
		return VariantFiction, true
	case "n", string(VariantNonFiction), "nonfiction":
		return VariantNonFiction, true
	case string(VariantStandard):
		return VariantStandard, true
	default:
		return VariantStandard, false
	}
}

// Book is one catalog item and its availability state.
//
// Fields are unexported; state changes only through the Library that owns the book.
type Book struct {
	id              BookIDString
	title           string
	author          string
	genre           string
	publicationYear int
	isAvailable     bool
	variant         Variant
	detail          string
}

// BookSummary is the structured record a renderer turns into display lines.
// FictionType is only set for fiction books, Subject only for non-fiction books.
type BookSummary struct {
	ID          BookIDString
	Title       string
	Author      string
	Genre       string
	Year        int
	Available   bool
	Variant     Variant
	FictionType string
	Subject     string
}

// ID returns the book id.
func (b Book) ID() BookIDString { return b.id }

// Title returns the book title.
func (b Book) Title() string { return b.title }

// Author returns the book author.
func (b Book) Author() string { return b.author }

// Genre returns the book genre.
func (b Book) Genre() string { return b.genre }

// PublicationYear returns the year the book was published.
func (b Book) PublicationYear() int { return b.publicationYear }

// IsAvailable reports whether the book can be checked out.
func (b Book) IsAvailable() bool { return b.isAvailable }

// Variant returns the variant tag.
func (b Book) Variant() Variant { return b.variant }

// FictionType returns the fiction type, or "" if the book is not fiction.
func (b Book) FictionType() string {
	if b.variant != VariantFiction {
		return ""
	}

	return b.detail
}

// Subject returns the subject, or "" if the book is not non-fiction.
func (b Book) Subject() string {
	if b.variant != VariantNonFiction {
		return ""
	}

	return b.detail
}

// Summary produces the display record, filling the variant-specific field depending on the tag.
func (b Book) Summary() BookSummary {
	summary := BookSummary{
		ID:        b.id,
		Title:     b.title,
		Author:    b.author,
		Genre:     b.genre,
		Year:      b.publicationYear,
		Available: b.isAvailable,
		Variant:   b.variant,
	}

	switch b.variant {
	case VariantFiction:
		summary.FictionType = b.detail
	case VariantNonFiction:
		summary.Subject = b.detail
	case VariantStandard:
		// no extra attribute
	}

	return summary
}

func (b *Book) canCheckout() error {
	if !b.isAvailable {
		return bookNotAvailable(b.id)
	}

	return nil
}

func (b *Book) checkout() {
	b.isAvailable = false
}

func (b *Book) returnToLibrary() {
	b.isAvailable = true
}

package domain

import (
	"fmt"
	"strings"
)

// Catalog tags are cosmetic labels shown in the item description.
// They carry no behavior.
const (
	TagFeatured       = "FEATURED"
	TagRecommended    = "RECOMMENDED"
	TagSpecialEdition = "SPECIAL EDITION"
)

// Item represents a catalog entry (a physical book) with a lifecycle state
type Item struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Category string    `json:"category"`
	ISBN     string    `json:"isbn"`
	State    ItemState `json:"state"`
	Tags     []string  `json:"tags,omitempty"`

	// History is the ordered audit trail of every borrow-to-return
	// cycle. Records are shared with the ledger and never deleted.
	History []*LoanRecord `json:"-"`
}

// NewItem creates an item in the Available state
func NewItem(id, title, author, category, isbn string, tags []string) *Item {
	return &Item{
		ID:       id,
		Title:    title,
		Author:   author,
		Category: category,
		ISBN:     isbn,
		State:    StateAvailable,
		Tags:     append([]string(nil), tags...),
	}
}

// AddTag appends a cosmetic tag if not already present
func (i *Item) AddTag(tag string) {
	for _, t := range i.Tags {
		if t == tag {
			return
		}
	}
	i.Tags = append(i.Tags, tag)
}

// Describe renders the catalog description line, with each tag appended
// in brackets the way the listing screens print it.
func (i *Item) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Book ID: %s, Title: %s, Author: %s, Category: %s, ISBN: %s, Status: %s",
		i.ID, i.Title, i.Author, i.Category, i.ISBN, i.State)
	for _, tag := range i.Tags {
		fmt.Fprintf(&b, " [%s]", tag)
	}
	return b.String()
}

// BorrowCount returns how many times the item has been borrowed
func (i *Item) BorrowCount() int {
	return len(i.History)
}

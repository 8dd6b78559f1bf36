package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"openshelf/internal/core/domain"
)

func TestItem_DescribeAppendsTags(t *testing.T) {
	item := domain.NewItem("B001", "Clean Code", "Robert C. Martin", "Software", "978-0132350884", nil)
	item.AddTag(domain.TagFeatured)
	item.AddTag(domain.TagSpecialEdition)
	item.AddTag(domain.TagFeatured) // duplicate is ignored

	desc := item.Describe()
	assert.Contains(t, desc, "Book ID: B001")
	assert.Contains(t, desc, "Status: AVAILABLE")
	assert.Equal(t, "Clean Code", item.Title)
	assert.Contains(t, desc, "[FEATURED] [SPECIAL EDITION]")
	assert.Len(t, item.Tags, 2)
}

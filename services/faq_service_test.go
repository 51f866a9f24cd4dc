package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iptv-backend/utils"
)

func TestFAQCreateAssignsNextOrder(t *testing.T) {
	db := openTestDB(t)
	svc := NewFAQService(db)

	first, err := svc.Create("Q1", "A1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.DisplayOrder)

	second, err := svc.Create("Q2", "A2", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, second.DisplayOrder)

	// explicit order respected, next auto order continues from the max
	third, err := svc.Create("Q3", "A3", intPtr(10))
	require.NoError(t, err)
	assert.Equal(t, 10, third.DisplayOrder)

	fourth, err := svc.Create("Q4", "A4", nil)
	require.NoError(t, err)
	assert.Equal(t, 11, fourth.DisplayOrder)
}

func TestFAQValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewFAQService(db)

	_, err := svc.Create("  ", "", nil)
	var vErr *utils.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"question", "answer"}, vErr.Fields)

	faq, err := svc.Create("Q", "A", nil)
	require.NoError(t, err)

	_, err = svc.Update(faq.ID, FAQPatch{Question: strPtr(" ")})
	assert.ErrorAs(t, err, &vErr)
}

func TestFAQListOrdering(t *testing.T) {
	db := openTestDB(t)
	svc := NewFAQService(db)

	// insertion order deliberately scrambled relative to display order
	b, err := svc.Create("B", "answer", intPtr(2))
	require.NoError(t, err)
	c, err := svc.Create("C", "answer", intPtr(3))
	require.NoError(t, err)
	a, err := svc.Create("A", "answer", intPtr(1))
	require.NoError(t, err)
	tie, err := svc.Create("B2", "answer", intPtr(2))
	require.NoError(t, err)

	faqs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, faqs, 4)

	assert.Equal(t, a.ID, faqs[0].ID)
	assert.Equal(t, b.ID, faqs[1].ID)   // order 2, lower id wins the tie
	assert.Equal(t, tie.ID, faqs[2].ID) // order 2, higher id
	assert.Equal(t, c.ID, faqs[3].ID)
}

func TestFAQUpdateAndDelete(t *testing.T) {
	db := openTestDB(t)
	svc := NewFAQService(db)

	faq, err := svc.Create("Q1", "A1", nil)
	require.NoError(t, err)

	updated, err := svc.Update(faq.ID, FAQPatch{Answer: strPtr("A1 updated")})
	require.NoError(t, err)
	assert.Equal(t, "A1 updated", updated.Answer)
	assert.Equal(t, "Q1", updated.Question)

	require.NoError(t, svc.Delete(faq.ID))
	assert.ErrorIs(t, svc.Delete(faq.ID), utils.ErrNotFound)
}

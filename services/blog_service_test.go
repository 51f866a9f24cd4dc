package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iptv-backend/models"
	"iptv-backend/utils"
)

func TestBlogCreate(t *testing.T) {
	db := openTestDB(t)
	svc := NewBlogService(db)

	t.Run("derives the slug from the title", func(t *testing.T) {
		blog, err := svc.Create(BlogInput{Title: "Hello, World!", Content: "body"})
		require.NoError(t, err)
		assert.Equal(t, "hello-world", blog.Slug)
		assert.Equal(t, models.BlogStatusDraft, blog.Status)
		assert.False(t, blog.Published)
	})

	t.Run("duplicate slug conflicts instead of disambiguating", func(t *testing.T) {
		_, err := svc.Create(BlogInput{Title: "Hello World", Content: "other body"})
		var cErr *utils.ConflictError
		assert.ErrorAs(t, err, &cErr)
	})

	t.Run("missing fields listed", func(t *testing.T) {
		_, err := svc.Create(BlogInput{})
		var vErr *utils.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ElementsMatch(t, []string{"title", "content"}, vErr.Fields)
	})

	t.Run("bad status rejected", func(t *testing.T) {
		_, err := svc.Create(BlogInput{Title: "Another", Content: "body", Status: "archived"})
		var vErr *utils.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestBlogPublishedListing(t *testing.T) {
	db := openTestDB(t)
	svc := NewBlogService(db)

	for i := 1; i <= 12; i++ {
		status := models.BlogStatusPublished
		if i%4 == 0 {
			status = models.BlogStatusDraft
		}
		blog, err := svc.Create(BlogInput{
			Title:   fmt.Sprintf("Post %d", i),
			Content: "body",
			Status:  status,
		})
		require.NoError(t, err)
		// spread creation times so ordering is deterministic
		created := time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Model(blog).Update("created_at", created).Error)
	}

	page, err := svc.ListPublished(1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(9), page.Total) // 3 of 12 are drafts
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Blogs, 5)

	// newest first
	assert.Equal(t, "post-11", page.Blogs[0].Slug)
	for _, blog := range page.Blogs {
		assert.True(t, blog.Published)
	}

	second, err := svc.ListPublished(2, 5)
	require.NoError(t, err)
	assert.Len(t, second.Blogs, 4)

	t.Run("slug lookup only finds published posts", func(t *testing.T) {
		_, err := svc.GetPublishedBySlug("post-4") // draft
		assert.Error(t, err)

		blog, err := svc.GetPublishedBySlug("post-5")
		require.NoError(t, err)
		assert.Equal(t, "Post 5", blog.Title)
	})

	t.Run("admin listing sees drafts", func(t *testing.T) {
		all, err := svc.ListAll()
		require.NoError(t, err)
		assert.Len(t, all, 12)
	})
}

func TestBlogUpdate(t *testing.T) {
	db := openTestDB(t)
	svc := NewBlogService(db)

	blog, err := svc.Create(BlogInput{Title: "First Post", Content: "body"})
	require.NoError(t, err)
	other, err := svc.Create(BlogInput{Title: "Second Post", Content: "body"})
	require.NoError(t, err)

	t.Run("title change re-derives the slug", func(t *testing.T) {
		updated, err := svc.Update(blog.ID, BlogPatch{Title: strPtr("Renamed Post")})
		require.NoError(t, err)
		assert.Equal(t, "renamed-post", updated.Slug)
		assert.Equal(t, "body", updated.Content) // untouched
	})

	t.Run("slug collision on rename conflicts", func(t *testing.T) {
		_, err := svc.Update(other.ID, BlogPatch{Title: strPtr("Renamed Post")})
		var cErr *utils.ConflictError
		assert.ErrorAs(t, err, &cErr)
	})

	t.Run("status syncs the published flag", func(t *testing.T) {
		updated, err := svc.Update(blog.ID, BlogPatch{Status: strPtr(models.BlogStatusPublished)})
		require.NoError(t, err)
		assert.True(t, updated.Published)

		updated, err = svc.Update(blog.ID, BlogPatch{Status: strPtr(models.BlogStatusDraft)})
		require.NoError(t, err)
		assert.False(t, updated.Published)
	})
}

func TestBlogDeleteDetachesImages(t *testing.T) {
	db := openTestDB(t)
	svc := NewBlogService(db)

	blog, err := svc.Create(BlogInput{Title: "With Images", Content: "body"})
	require.NoError(t, err)

	image, err := svc.CreateImage(BlogImageInput{BlogID: &blog.ID, ImageURL: "/uploads/blog/a.jpg"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(blog.ID))

	var kept models.BlogImage
	require.NoError(t, db.First(&kept, image.ID).Error)
	assert.Nil(t, kept.BlogID)
}

func TestBlogImageValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewBlogService(db)

	_, err := svc.CreateImage(BlogImageInput{})
	var vErr *utils.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateImage(BlogImageInput{BlogID: uintPtr(99), ImageURL: "/uploads/blog/x.jpg"})
	assert.ErrorAs(t, err, &vErr)
}

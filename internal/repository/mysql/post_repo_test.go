package mysql

import (
	"context"
	"fmt"
	"testing"
	"time"

	"Tieba_Community/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedPosts inserts n posts with strictly increasing creation times so the
// newest-first ordering is unambiguous. Returns ids in insertion order.
func seedPosts(t *testing.T, db *gorm.DB, barID, authorID uint64, n int) []uint64 {
	t.Helper()
	repo := &PostRepository{DB: db}
	base := time.Now().Add(-24 * time.Hour)
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		p := &model.Post{
			BarID:     barID,
			Title:     fmt.Sprintf("post %d", i),
			Content:   fmt.Sprintf("content %d", i),
			AuthorID:  authorID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), p))
		ids = append(ids, p.ID)
	}
	return ids
}

func TestPostCreate_AwardsAuthorExp(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	bar := seedBar(t, db, "general", author.ID)

	repo := &PostRepository{DB: db}
	require.NoError(t, repo.Create(context.Background(), &model.Post{
		BarID: bar.ID, Title: "hello", Content: "world", AuthorID: author.ID,
	}))

	assert.Equal(t, int64(PostExpAward), userExp(t, db, author.ID))
}

func TestPostCreate_GhostParentsRejected(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	bar := seedBar(t, db, "general", author.ID)

	repo := &PostRepository{DB: db}

	err := repo.Create(context.Background(), &model.Post{
		BarID: 9999, Title: "t", Content: "c", AuthorID: author.ID,
	})
	require.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	err = repo.Create(context.Background(), &model.Post{
		BarID: bar.ID, Title: "t", Content: "c", AuthorID: 8888,
	})
	require.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	assert.Zero(t, countRows(t, db, &model.Post{}))
	assert.Zero(t, userExp(t, db, author.ID)) // award rolled back with the insert
}

func TestPostFindByID_NotFoundIsSoft(t *testing.T) {
	db := newTestDB(t)
	post, err := (&PostRepository{DB: db}).FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestListByBar_NewestFirstPagination(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	bar := seedBar(t, db, "general", author.ID)
	ids := seedPosts(t, db, bar.ID, author.ID, 25)

	repo := &PostRepository{DB: db}

	page1, err := repo.ListByBar(context.Background(), bar.ID, 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, page1, 10)
	assert.Equal(t, ids[24], page1[0].ID) // newest first
	assert.Equal(t, ids[15], page1[9].ID)

	page3, err := repo.ListByBar(context.Background(), bar.ID, 0, 20, 10)
	require.NoError(t, err)
	require.Len(t, page3, 5)
	assert.Equal(t, ids[0], page3[4].ID) // oldest lands last

	// Past the end: empty, not an error.
	page4, err := repo.ListByBar(context.Background(), bar.ID, 0, 30, 10)
	require.NoError(t, err)
	assert.Empty(t, page4)
}

func TestListByBar_Enrichment(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	fan := seedUser(t, db, "fan")
	bar := seedBar(t, db, "general", author.ID)
	ids := seedPosts(t, db, bar.ID, author.ID, 1)

	eng := &EngagementRepository{DB: db}
	_, _, err := eng.TogglePostLike(context.Background(), fan.ID, ids[0])
	require.NoError(t, err)

	comments := &CommentRepository{DB: db}
	require.NoError(t, comments.Create(context.Background(), &model.Comment{
		PostID: ids[0], Content: "first", AuthorID: fan.ID,
	}))
	require.NoError(t, comments.Create(context.Background(), &model.Comment{
		PostID: ids[0], Content: "second", AuthorID: author.ID,
	}))

	repo := &PostRepository{DB: db}

	asFan, err := repo.ListByBar(context.Background(), bar.ID, fan.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, asFan, 1)
	assert.Equal(t, "author", asFan[0].AuthorName)
	assert.Equal(t, int64(1), asFan[0].LikeCount)
	assert.Equal(t, int64(2), asFan[0].CommentCount)
	assert.True(t, asFan[0].LikedByMe)

	// Anonymous caller: same counts, no liked flag.
	asAnon, err := repo.ListByBar(context.Background(), bar.ID, 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, asAnon, 1)
	assert.Equal(t, int64(1), asAnon[0].LikeCount)
	assert.False(t, asAnon[0].LikedByMe)
}

func TestFindViewByID(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	bar := seedBar(t, db, "general", author.ID)
	ids := seedPosts(t, db, bar.ID, author.ID, 1)

	repo := &PostRepository{DB: db}

	view, err := repo.FindViewByID(context.Background(), ids[0], 0)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "post 0", view.Title)
	assert.Equal(t, "author", view.AuthorName)

	gone, err := repo.FindViewByID(context.Background(), 9999, 0)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestListLatest_SpansBars(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	barA := seedBar(t, db, "a", author.ID)
	barB := seedBar(t, db, "b", author.ID)
	seedPosts(t, db, barA.ID, author.ID, 2)
	seedPosts(t, db, barB.ID, author.ID, 1)

	repo := &PostRepository{DB: db}
	latest, err := repo.ListLatest(context.Background(), 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	bars := map[uint64]bool{}
	for _, p := range latest {
		bars[p.BarID] = true
	}
	assert.True(t, bars[barA.ID])
	assert.True(t, bars[barB.ID])
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	bar := seedBar(t, db, "general", author.ID)

	repo := &PostRepository{DB: db}
	require.NoError(t, repo.Create(context.Background(), &model.Post{
		BarID: bar.ID, Title: "Go Generics Deep Dive", Content: "type parameters", AuthorID: author.ID,
	}))
	require.NoError(t, repo.Create(context.Background(), &model.Post{
		BarID: bar.ID, Title: "cooking", Content: "how to braise GENERIC vegetables", AuthorID: author.ID,
	}))
	require.NoError(t, repo.Create(context.Background(), &model.Post{
		BarID: bar.ID, Title: "unrelated", Content: "nothing here", AuthorID: author.ID,
	}))

	hits, err := repo.Search(context.Background(), "generic", 0)
	require.NoError(t, err)
	assert.Len(t, hits, 2) // matches title of one, body of the other

	none, err := repo.Search(context.Background(), "zzzz", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearch_Cap(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	bar := seedBar(t, db, "general", author.ID)
	seedPosts(t, db, bar.ID, author.ID, SearchCap+5)

	hits, err := (&PostRepository{DB: db}).Search(context.Background(), "post", 0)
	require.NoError(t, err)
	assert.Len(t, hits, SearchCap)
}

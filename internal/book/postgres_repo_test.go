package book

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookspark/internal/platform/openlibrary"
	"bookspark/internal/testutil"
)

func setupRepo(t *testing.T) *PostgresRepo {
	t.Helper()
	return NewPostgresRepo(testutil.NewTestDB(t), 3*time.Second)
}

// uniqueKey keeps rows from separate runs apart in a shared test database.
func uniqueKey() string {
	return fmt.Sprintf("/works/OL%dW", uuid.New().ID())
}

func TestPostgresRepo_InsertAndFind(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	b := &Book{
		OpenLibraryKey: uniqueKey(),
		Title:          "Example Book",
		Authors:        []string{"Jane Doe"},
		PageCount:      intPtr(320),
		ISBN13:         strPtr("9781234567890"),
		Genres:         []string{"Fiction"},
		Language:       DefaultLanguage,
		Source:         SourceOpenLibrary,
		FetchedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.Insert(ctx, b))
	require.NotEmpty(t, b.ID)
	require.NotZero(t, b.CreatedAt)

	found, err := repo.FindByExternalKey(ctx, b.OpenLibraryKey)
	require.NoError(t, err)
	assert.Equal(t, b.ID, found.ID)
	assert.Equal(t, []string{"Jane Doe"}, found.Authors)
	assert.Equal(t, []string{}, found.Subjects)
	require.NotNil(t, found.PageCount)
	assert.Equal(t, 320, *found.PageCount)
	assert.Nil(t, found.ISBN10)

	byID, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.OpenLibraryKey, byID.OpenLibraryKey)
}

func TestPostgresRepo_InsertDuplicate(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	key := uniqueKey()
	require.NoError(t, repo.Insert(ctx, &Book{OpenLibraryKey: key, Title: "First", Language: "en", Source: SourceOpenLibrary, FetchedAt: time.Now()}))

	err := repo.Insert(ctx, &Book{OpenLibraryKey: key, Title: "Second", Language: "en", Source: SourceOpenLibrary, FetchedAt: time.Now()})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestPostgresRepo_NotFound(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.FindByExternalKey(ctx, uniqueKey())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresRepo_ListPagesByCursor(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	genre := "Genre-" + uuid.NewString()[:8]
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Insert(ctx, &Book{
			OpenLibraryKey: uniqueKey(),
			Title:          fmt.Sprintf("Book %d", i),
			Genres:         []string{genre},
			Language:       "en",
			Source:         SourceOpenLibrary,
			FetchedAt:      time.Now(),
		}))
	}

	first, next, err := repo.List(ctx, Query{Genre: genre, Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.NotEmpty(t, next)

	second, next, err := repo.List(ctx, Query{Genre: genre, Limit: 2, Cursor: next})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Empty(t, next)
	assert.NotEqual(t, first[1].ID, second[0].ID)

	_, _, err = repo.List(ctx, Query{Cursor: "not-a-cursor"})
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestPostgresRepo_ResolveTwiceReturnsIdenticalBook(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	key := uniqueKey()

	ctrl := gomock.NewController(t)
	works := NewMockWorkSource(ctrl)
	works.EXPECT().GetWork(gomock.Any(), key).Return(exampleWork(), nil)
	works.EXPECT().GetEditions(gomock.Any(), key, 50).Return(exampleEditions(), nil)
	works.EXPECT().GetAuthor(gomock.Any(), "/authors/OL1A").Return(&openlibrary.Author{Name: "Jane Doe"}, nil)

	svc := NewService(repo, works, nil, Config{}, quietLogger)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 535897932, time.UTC) }

	first, err := svc.ResolveOrFetch(ctx, key)
	require.NoError(t, err)
	second, err := svc.ResolveOrFetch(ctx, key)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

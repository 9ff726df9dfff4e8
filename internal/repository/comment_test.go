package repository_test

import (
	"context"
	"testing"

	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/comment"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/testutils"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepo(t *testing.T) {
	gdb := testutils.NewSQLiteDB(t)
	f := seedTickets(t, gdb, repository.NewTicketRepo(gdb))
	repo := repository.NewCommentRepo(gdb)
	ctx := context.Background()

	first := comment.Comment{TicketID: f.byClient.ID, UserID: f.client.ID, Content: "first"}
	second := comment.Comment{TicketID: f.byClient.ID, UserID: f.staff.ID, Content: "second"}
	require.NoError(t, repo.CreateComment(ctx, &first))
	require.NoError(t, repo.CreateComment(ctx, &second))
	require.NoError(t, repo.CreateComment(ctx, &comment.Comment{TicketID: f.byTech.ID, UserID: f.tech.ID, Content: "other"}))

	items, total, err := repo.ListCommentsByTicket(ctx, f.byClient.ID, query.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Content)
	assert.Equal(t, f.staff.Email, items[1].User.Email)

	second.Content = "edited"
	require.NoError(t, repo.UpdateComment(ctx, &second))
	got, err := repo.GetCommentByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)

	require.NoError(t, repo.DeleteComment(ctx, first.ID))
	assert.Error(t, repo.DeleteComment(ctx, first.ID))
}

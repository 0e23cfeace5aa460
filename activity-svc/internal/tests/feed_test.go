package tests

import (
	"context"
	"fmt"
	"testing"

	"rik-restaurant/activity-svc/internal/domain"
	"rik-restaurant/activity-svc/internal/mocks"
	"rik-restaurant/activity-svc/internal/service"
	"rik-restaurant/activity-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFeed(t *testing.T, size int64) (*storage.Feed, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewFeed(client, size), mr
}

func TestFeed_RecordAndRead(t *testing.T) {
	feed, _ := setupFeed(t, 10)
	ctx := context.Background()

	events := []domain.Event{
		{ID: "e1", Type: "order.placed", Identity: "ann@example.com"},
		{ID: "e2", Type: "booking.confirmed", Identity: "bob@example.com"},
		{ID: "e3", Type: "order.placed", Identity: "ann@example.com"},
	}
	for _, e := range events {
		require.NoError(t, feed.Record(ctx, e))
	}

	recent, err := feed.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "e3", recent[0].ID)
	assert.Equal(t, "e1", recent[2].ID)

	ann, err := feed.ForIdentity(ctx, "ann@example.com", 10)
	require.NoError(t, err)
	require.Len(t, ann, 2)
	assert.Equal(t, "e3", ann[0].ID)

	none, err := feed.ForIdentity(ctx, "carl@example.com", 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	counts, err := feed.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Counts{"order.placed": 2, "booking.confirmed": 1}, counts)
}

func TestFeed_TrimsToSize(t *testing.T) {
	feed, mr := setupFeed(t, 3)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, feed.Record(ctx, domain.Event{ID: fmt.Sprintf("e%d", i), Type: "order.placed", Identity: "guest"}))
	}

	recent, err := feed.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "e5", recent[0].ID)
	assert.Equal(t, "e3", recent[2].ID)

	stored, err := mr.List(storage.UserKey("guest"))
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	counts, err := feed.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), counts["order.placed"])
}

func TestFeed_SkipsUnreadableEntries(t *testing.T) {
	feed, mr := setupFeed(t, 10)
	ctx := context.Background()

	require.NoError(t, feed.Record(ctx, domain.Event{ID: "e1", Type: "user.registered"}))
	_, err := mr.Lpush(storage.RecentKey, "{broken")
	require.NoError(t, err)

	recent, err := feed.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "e1", recent[0].ID)
}

func TestActivityService_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int64
		want  int64
	}{
		{name: "default", limit: 0, want: 50},
		{name: "within", limit: 20, want: 20},
		{name: "too large", limit: 500, want: 50},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			feed := mocks.NewFeedStore(t)
			feed.On("Recent", mock.Anything, testCase.want).Return([]domain.Event{}, nil).Once()
			feed.On("ForIdentity", mock.Anything, "ann@example.com", testCase.want).Return([]domain.Event{}, nil).Once()

			svc := service.NewActivityService(feed, 50)
			_, err := svc.Recent(context.Background(), testCase.limit)
			require.NoError(t, err)
			_, err = svc.ForIdentity(context.Background(), "ann@example.com", testCase.limit)
			require.NoError(t, err)
		})
	}
}

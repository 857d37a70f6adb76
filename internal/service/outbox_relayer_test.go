package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"Tieba_Community/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayerDrain_MarksSentAndFailed(t *testing.T) {
	db, _, fan, postID, commentID := engagementFixture(t)
	eng := NewEngagementService(db)
	_, err := eng.TogglePostLike(context.Background(), fan, postID)
	require.NoError(t, err)
	_, err = eng.ToggleCommentLike(context.Background(), fan, commentID)
	require.NoError(t, err)

	var delivered []string
	sender := func(_ context.Context, ev *model.EngagementOutbox) error {
		if ev.EventType == "comment_like" {
			return errors.New("broker down")
		}
		delivered = append(delivered, ev.EventType)
		return nil
	}

	relayer := NewOutboxRelayer(db, sender, zerolog.Nop())
	relayer.drainOnce(context.Background())

	assert.Equal(t, []string{"post_like"}, delivered)

	var sent, failed int64
	require.NoError(t, db.Model(&model.EngagementOutbox{}).Where("status = 1").Count(&sent).Error)
	require.NoError(t, db.Model(&model.EngagementOutbox{}).Where("status = 2").Count(&failed).Error)
	assert.Equal(t, int64(1), sent)
	assert.Equal(t, int64(1), failed)

	// A second pass finds nothing pending and delivers nothing new.
	relayer.drainOnce(context.Background())
	assert.Len(t, delivered, 1)
}

func TestRelayerDrain_LogsStatusUpdateFailure(t *testing.T) {
	db, _, fan, postID, _ := engagementFixture(t)
	_, err := NewEngagementService(db).TogglePostLike(context.Background(), fan, postID)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	// Sender succeeds but takes the database down with it, so MarkSent has
	// nothing to write to.
	sender := func(context.Context, *model.EngagementOutbox) error {
		return sqlDB.Close()
	}

	var buf bytes.Buffer
	relayer := NewOutboxRelayer(db, sender, zerolog.New(&buf))
	relayer.drainOnce(context.Background())

	assert.Contains(t, buf.String(), "outbox mark-sent update failed")
}

func TestLogSenderAlwaysDelivers(t *testing.T) {
	sender := LogSender(zerolog.Nop())
	err := sender(context.Background(), &model.EngagementOutbox{EventType: "follow", ActorID: 1, TargetID: 2})
	assert.NoError(t, err)
}

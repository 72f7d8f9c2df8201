package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const ecsSlug = "endocannabinoid-system-curriculum-infographic"

func newTestChat(t *testing.T, gen Generator, max int) *ChatService {
	t.Helper()
	c, err := NewChatService(newTestSite(gen, nil), max, zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestChatAppendsInOrder(t *testing.T) {
	gen := &fakeGenerator{text: "CB1 receptors are mostly in the brain."}
	chat := newTestChat(t, gen, 4)
	ctx := context.Background()

	resp, err := chat.Send(ctx, ecsSlug, "", "student", "What is CB1?")
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "student", resp.Audience)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, models.SenderUser, resp.Messages[0].Sender)
	assert.Equal(t, "What is CB1?", resp.Messages[0].Text)
	assert.Equal(t, models.SenderAI, resp.Messages[1].Sender)
	assert.Equal(t, "CB1 receptors are mostly in the brain.", resp.Messages[1].Text)
	assert.NotEqual(t, resp.Messages[0].ID, resp.Messages[1].ID)
	assert.Contains(t, gen.LastPrompt(), "students")

	resp2, err := chat.Send(ctx, ecsSlug, resp.SessionID, "", "And CB2?")
	require.NoError(t, err)
	require.Len(t, resp2.Messages, 4)
	assert.Equal(t, resp.Messages[0].ID, resp2.Messages[0].ID)
	assert.Equal(t, "And CB2?", resp2.Messages[2].Text)
	assert.Equal(t, "general", resp2.Audience)

	hist, err := chat.History(ecsSlug, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, resp2.Messages, hist.Messages)
}

func TestChatRejectsEmptyText(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	chat := newTestChat(t, gen, 4)

	_, err := chat.Send(context.Background(), ecsSlug, "s1", "general", "  ")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please type a question first.", vErr.Message)
	assert.Equal(t, 0, gen.Calls())

	hist, err := chat.History(ecsSlug, "s1")
	require.NoError(t, err)
	assert.Empty(t, hist.Messages)
}

func TestChatFailureAppendsFallback(t *testing.T) {
	chat := newTestChat(t, &fakeGenerator{err: &StatusError{Code: 503}}, 4)

	resp, err := chat.Send(context.Background(), ecsSlug, "", "healthcare", "Dosing?")
	require.NoError(t, err)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "Sorry, I could not process that request.", resp.Messages[1].Text)
}

func TestChatSessionsAreEvicted(t *testing.T) {
	chat := newTestChat(t, &fakeGenerator{text: "ok"}, 1)
	ctx := context.Background()

	first, err := chat.Send(ctx, ecsSlug, "", "", "one")
	require.NoError(t, err)
	_, err = chat.Send(ctx, ecsSlug, "", "", "two")
	require.NoError(t, err)

	hist, err := chat.History(ecsSlug, first.SessionID)
	require.NoError(t, err)
	assert.Empty(t, hist.Messages)
	assert.Equal(t, 1, chat.GetStatus()["sessions"])
}

func TestChatRequiresChatPage(t *testing.T) {
	chat := newTestChat(t, &fakeGenerator{}, 4)

	_, err := chat.Send(context.Background(), "sleep-for-active-folk", "", "", "hi")
	assert.ErrorIs(t, err, ErrActionNotFound)

	_, err = chat.History("missing", "x")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestChatConcurrentFirstSendsShareSession(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	chat := newTestChat(t, gen, 4)

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := chat.Send(context.Background(), ecsSlug, "shared", "general", fmt.Sprintf("question %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	hist, err := chat.History(ecsSlug, "shared")
	require.NoError(t, err)
	assert.Len(t, hist.Messages, 2*n)
	assert.Equal(t, n, gen.Calls())
}

package notify

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veripay/pkg/domain"
)

func TestNotifier_DeliversQueuedMessages(t *testing.T) {
	sink := NewMemorySink()
	notifier := NewNotifier(sink, 8, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = notifier.Run(ctx)
	}()

	seller := domain.SellerID(uuid.New())
	notifier.Emit(ctx, Message{SellerID: seller, Kind: KindDocumentReceived, Body: "received"})
	notifier.Emit(ctx, Message{SellerID: seller, Kind: KindVerificationComplete, Body: "done"})

	require.Eventually(t, func() bool {
		return len(sink.Messages()) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done

	msgs := sink.Messages()
	assert.Equal(t, KindDocumentReceived, msgs[0].Kind)
	assert.Equal(t, KindVerificationComplete, msgs[1].Kind)
}

func TestNotifier_EmitNeverBlocks(t *testing.T) {
	// No worker draining: the inbox fills and further emits are dropped.
	notifier := NewNotifier(NewMemorySink(), 1, slog.Default())

	ctx := context.Background()
	seller := domain.SellerID(uuid.New())

	donech := make(chan struct{})
	go func() {
		defer close(donech)
		for i := 0; i < 10; i++ {
			notifier.Emit(ctx, Message{SellerID: seller, Kind: KindTaxIDReceived})
		}
	}()

	select {
	case <-donech:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full inbox")
	}
}

func TestNotifier_NilSafe(t *testing.T) {
	var notifier *Notifier
	assert.NotPanics(t, func() {
		notifier.Emit(context.Background(), Message{})
	})
}

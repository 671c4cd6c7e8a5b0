package trends

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimerPauserHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	timerPauser{}.Pause(ctx, 5*time.Second)
	require.Less(t, time.Since(start), time.Second, "pause should exit immediately when context is done")
}

func TestTimerPauserSkipsNonPositiveDelay(t *testing.T) {
	t.Parallel()

	start := time.Now()
	timerPauser{}.Pause(context.Background(), 0)
	require.Less(t, time.Since(start), 100*time.Millisecond)
}

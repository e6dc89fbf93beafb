package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/zanspiler/forums/internal/repo"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := repo.NewRedis(mr.Addr())
	defer rds.Close()

	ctx := context.Background()
	require.NoError(t, rds.Ping(ctx))

	rl := repo.NewRateLimiter(rds, 3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		require.True(t, ok, "request %d should pass", i)
	}

	ok, err := rl.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.False(t, ok, "limit exceeded")

	// other callers are unaffected
	ok, err = rl.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	require.True(t, ok)
}

package postgres

import (
	"context"
	"os"
	"testing"

	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/storage/storagetest"

	"github.com/stretchr/testify/require"
)

const dsnEnv = "TICKETING_TEST_POSTGRES_DSN"

func TestStore(t *testing.T) {
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s not set", dsnEnv)
	}

	storagetest.Run(t, func(t *testing.T) redemption.Store {
		ctx := context.Background()
		s, err := Connect(ctx, dsn)
		require.NoError(t, err)
		t.Cleanup(s.Close)

		require.NoError(t, s.Migrate(ctx))
		_, err = s.pool.Exec(ctx, `TRUNCATE ticket_validations`)
		require.NoError(t, err)
		return s
	})
}

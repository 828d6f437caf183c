package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnwards/crm/internal/database"
	"github.com/johnwards/crm/internal/store"
)

// isolate clears every CRM_* variable and points the database at a temp file.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{
		"CRM_CONFIG", "CRM_ADDR", "CRM_OPS_ADDR", "CRM_DB_DRIVER", "CRM_DB",
		"CRM_LOG_LEVEL", "CRM_LOG_FORMAT", "CRM_REQUEST_LOG", "CRM_AUTO_MIGRATE",
	} {
		t.Setenv(k, "")
	}
	path := filepath.Join(t.TempDir(), "crm.db")
	t.Setenv("CRM_DB", path)
	t.Setenv("CRM_LOG_LEVEL", "error")
	return path
}

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "crm", cmd.Use)
	assert.Contains(t, cmd.Long, "CRM_")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"serve", "migrate", "seed"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestMigrateCommand(t *testing.T) {
	path := isolate(t)

	out, err := execute(t, context.Background(), "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema at version")

	db, err := database.Open(database.DriverModernc, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	version, err := database.Version(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, database.Latest(), version)
}

func TestSeedCommand(t *testing.T) {
	path := isolate(t)

	out, err := execute(t, context.Background(), "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seed complete")

	db, err := database.Open(database.DriverModernc, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	stats, err := store.New(db).Dashboard.Stats(context.Background())
	require.NoError(t, err)
	assert.Positive(t, stats.Companies)
}

func TestInvalidConfigFails(t *testing.T) {
	isolate(t)
	t.Setenv("CRM_DB_DRIVER", "postgres")

	_, err := execute(t, context.Background(), "migrate")
	assert.Error(t, err)
}

func TestServeStopsWhenContextCancelled(t *testing.T) {
	isolate(t)
	t.Setenv("CRM_ADDR", "127.0.0.1:0")
	t.Setenv("CRM_OPS_ADDR", "off")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := execute(t, ctx, "serve")
	assert.NoError(t, err)
}

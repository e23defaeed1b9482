package db_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rtharindu/echannaling-admin/db"
	"github.com/rtharindu/echannaling-admin/db/dbtest"
	"github.com/rtharindu/echannaling-admin/models"
)

func TestOpen_PingAndClose(t *testing.T) {
	client, err := db.Open(sqlite.Open(":memory:"), db.Options{MaxOpenConns: 1}, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, client.Ping(context.Background()))
	require.NoError(t, client.Close())
	assert.Error(t, client.Ping(context.Background()))
}

func TestMigrate_CreatesTables(t *testing.T) {
	gdb := dbtest.New(t)

	for _, table := range []string{"users", "agents", "doctors", "hospitals", "customers", "appointments"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
	assert.True(t, gdb.Migrator().HasColumn(&models.Doctor{}, "phonenumber"))
}

func TestGormLogger_ClosedConnectionWarns(t *testing.T) {
	var buf bytes.Buffer
	l := db.NewGormLogger(zerolog.New(&buf), false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, errors.New("sql: database is closed"))

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "SELECT 1")
	assert.Contains(t, out, "next query will reconnect")
}

func TestGormLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := db.NewGormLogger(zerolog.New(&buf), false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM doctors", 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormLogger_QueriesOnlyInDebug(t *testing.T) {
	var quiet, verbose bytes.Buffer
	fc := func() (string, int64) { return "SELECT count(*) FROM agents", 1 }

	db.NewGormLogger(zerolog.New(&quiet), false).Trace(context.Background(), time.Now(), fc, nil)
	db.NewGormLogger(zerolog.New(&verbose), true).Trace(context.Background(), time.Now(), fc, nil)

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "SELECT count(*) FROM agents")
}

func TestGormLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := db.NewGormLogger(zerolog.New(&buf), true).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	l.Warn(context.Background(), "slow %s", "query")

	assert.Empty(t, buf.String())
}

func TestIsConnectionClosed(t *testing.T) {
	assert.True(t, db.IsConnectionClosed(errors.New("conn closed")))
	assert.False(t, db.IsConnectionClosed(errors.New("syntax error")))
	assert.False(t, db.IsConnectionClosed(nil))
}

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.AppDataModel{}))
	return db
}

func sampleData(income string) *entity.AppData {
	amount := decimal.RequireFromString(income)
	data := entity.NewDefaultAppData()
	data.MonthlyIncome = &amount
	return data
}

func TestAppDataStore_LoadMissingReturnsNil(t *testing.T) {
	store := NewAppDataStore(openTestDB(t), "")

	data, err := store.Load(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestAppDataStore_SaveUpsertsPerOwner(t *testing.T) {
	db := openTestDB(t)
	store := NewAppDataStore(db, "")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "owner-1", sampleData("1000")))
	require.NoError(t, store.Save(ctx, "owner-1", sampleData("2500")))
	require.NoError(t, store.Save(ctx, "owner-2", sampleData("700")))

	var count int64
	require.NoError(t, db.Model(&model.AppDataModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	data, err := store.Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.True(t, data.Income().Equal(decimal.NewFromInt(2500)))

	other, err := store.Load(ctx, "owner-2")
	require.NoError(t, err)
	assert.True(t, other.Income().Equal(decimal.NewFromInt(700)))
}

func TestAppDataStore_KeysAreIsolated(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, NewAppDataStore(db, "planner_a").Save(ctx, "owner-1", sampleData("100")))

	data, err := NewAppDataStore(db, "planner_b").Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestAppDataStore_UndecodableRecord(t *testing.T) {
	db := openTestDB(t)
	store := NewAppDataStore(db, "")
	now := time.Now().UTC()
	require.NoError(t, db.Create(&model.AppDataModel{
		ID: uuid.New(), StoreKey: DefaultStoreKey, OwnerID: "owner-1",
		Payload: "{not json", CreatedAt: now, UpdatedAt: now,
	}).Error)

	data, err := store.Load(context.Background(), "owner-1")

	assert.Nil(t, data)
	assert.True(t, errors.Is(err, domainerror.ErrStorage))
}

func TestAppDataStore_Clear(t *testing.T) {
	store := NewAppDataStore(openTestDB(t), "")
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "owner-1", sampleData("1000")))

	require.NoError(t, store.Clear(ctx, "owner-1"))

	data, err := store.Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestCachedAppDataStore_WriteThroughAndServeFromCache(t *testing.T) {
	db := openTestDB(t)
	server, client := newTestRedis(t)
	store := NewCachedAppDataStore(NewAppDataStore(db, ""), client, "", time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "owner-1", sampleData("1800")))
	assert.True(t, server.Exists(DefaultStoreKey+":owner-1"))
	assert.Equal(t, time.Hour, server.TTL(DefaultStoreKey+":owner-1"))

	// The cache answers even when the row is gone.
	require.NoError(t, db.Where("owner_id = ?", "owner-1").Delete(&model.AppDataModel{}).Error)
	data, err := store.Load(ctx, "owner-1")
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.True(t, data.Income().Equal(decimal.NewFromInt(1800)))
}

func TestCachedAppDataStore_MissFillsCache(t *testing.T) {
	db := openTestDB(t)
	server, client := newTestRedis(t)
	ctx := context.Background()
	require.NoError(t, NewAppDataStore(db, "").Save(ctx, "owner-1", sampleData("900")))

	store := NewCachedAppDataStore(NewAppDataStore(db, ""), client, "", time.Minute)
	data, err := store.Load(ctx, "owner-1")

	require.NoError(t, err)
	assert.True(t, data.Income().Equal(decimal.NewFromInt(900)))
	assert.True(t, server.Exists(DefaultStoreKey+":owner-1"))
}

func TestCachedAppDataStore_CorruptEntryFallsBack(t *testing.T) {
	db := openTestDB(t)
	server, client := newTestRedis(t)
	ctx := context.Background()
	require.NoError(t, NewAppDataStore(db, "").Save(ctx, "owner-1", sampleData("640")))
	require.NoError(t, server.Set(DefaultStoreKey+":owner-1", "garbage"))

	store := NewCachedAppDataStore(NewAppDataStore(db, ""), client, "", time.Minute)
	data, err := store.Load(ctx, "owner-1")

	require.NoError(t, err)
	assert.True(t, data.Income().Equal(decimal.NewFromInt(640)))
}

func TestCachedAppDataStore_RedisDownStillServes(t *testing.T) {
	db := openTestDB(t)
	server, client := newTestRedis(t)
	store := NewCachedAppDataStore(NewAppDataStore(db, ""), client, "", time.Minute)
	ctx := context.Background()
	server.Close()

	require.NoError(t, store.Save(ctx, "owner-1", sampleData("300")))
	data, err := store.Load(ctx, "owner-1")

	require.NoError(t, err)
	assert.True(t, data.Income().Equal(decimal.NewFromInt(300)))
}

func TestCachedAppDataStore_ClearEvicts(t *testing.T) {
	db := openTestDB(t)
	server, client := newTestRedis(t)
	store := NewCachedAppDataStore(NewAppDataStore(db, ""), client, "", time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "owner-1", sampleData("300")))

	require.NoError(t, store.Clear(ctx, "owner-1"))

	assert.False(t, server.Exists(DefaultStoreKey+":owner-1"))
	data, err := store.Load(ctx, "owner-1")
	require.NoError(t, err)
	assert.Nil(t, data)
}

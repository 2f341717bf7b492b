package catalogservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventaris/models"
	"inventaris/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopLogger struct{}

func (nopLogger) InitLogger()            {}
func (nopLogger) SyncLogger()            {}
func (nopLogger) GetLogger() *zap.Logger { return zap.NewNop() }

var _ providers.ZapLoggerProvider = nopLogger{}

type fakeCatalogRepo struct {
	options   []Option
	listCalls int
}

func (f *fakeCatalogRepo) ListOptions(ctx context.Context, table string) ([]Option, error) {
	f.listCalls++
	return f.options, nil
}

func (f *fakeCatalogRepo) InsertOption(ctx context.Context, table, value string) (int64, error) {
	return 1, nil
}

func (f *fakeCatalogRepo) UpdateOption(ctx context.Context, table string, id int64, value string) error {
	return nil
}

func (f *fakeCatalogRepo) SoftDeleteOption(ctx context.Context, table string, id int64) error {
	return nil
}

func (f *fakeCatalogRepo) GetOptionByValue(ctx context.Context, table, value string) (*Option, error) {
	return nil, nil
}

// mapCache is an in-process stand-in for the redis provider.
type mapCache struct {
	entries map[string]string
	dels    []string
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]string{}}
}

func (c *mapCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.entries[key] = value.(string)
	return nil
}

func (c *mapCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.entries[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return v, nil
}

func (c *mapCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.entries, key)
	return nil
}

func (c *mapCache) Ping(ctx context.Context) error { return nil }
func (c *mapCache) Close() error                   { return nil }

var _ providers.CacheProvider = (*mapCache)(nil)

func TestListOptionsSoftDeleteVisibility(t *testing.T) {
	repo := &fakeCatalogRepo{options: []Option{
		{ID: 1, Value: "8GB"},
		{ID: 2, Value: "16GB", IsDeleted: true},
		{ID: 3, Value: "32GB"},
	}}
	service := NewCatalogService(repo, nil, nopLogger{})

	t.Run("dropdown view hides soft-deleted rows", func(t *testing.T) {
		options, err := service.ListOptions(context.Background(), "ram", false)
		require.NoError(t, err)
		require.Len(t, options, 2)
		assert.Equal(t, "8GB", options[0].Value)
		assert.Equal(t, "32GB", options[1].Value)
	})

	t.Run("display view keeps soft-deleted rows resolvable", func(t *testing.T) {
		options, err := service.ListOptions(context.Background(), "ram", true)
		require.NoError(t, err)
		require.Len(t, options, 3)
		assert.True(t, options[1].IsDeleted)
	})
}

func TestListOptionsUnknownCatalog(t *testing.T) {
	service := NewCatalogService(&fakeCatalogRepo{}, nil, nopLogger{})

	_, err := service.ListOptions(context.Background(), "floppy-disk", false)
	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestListOptionsCacheAside(t *testing.T) {
	repo := &fakeCatalogRepo{options: []Option{{ID: 1, Value: "i7"}}}
	cache := newMapCache()
	service := NewCatalogService(repo, cache, nopLogger{})

	_, err := service.ListOptions(context.Background(), "processor", true)
	require.NoError(t, err)
	_, err = service.ListOptions(context.Background(), "processor", true)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls, "second read must come from cache")
	assert.Contains(t, cache.entries, "catalog:processor_options")
}

func TestWritesInvalidateCache(t *testing.T) {
	repo := &fakeCatalogRepo{options: []Option{{ID: 1, Value: "i7"}}}
	cache := newMapCache()
	service := NewCatalogService(repo, cache, nopLogger{})

	_, err := service.ListOptions(context.Background(), "processor", true)
	require.NoError(t, err)

	_, err = service.CreateOption(context.Background(), "processor", "i9")
	require.NoError(t, err)
	assert.NotContains(t, cache.entries, "catalog:processor_options")

	require.NoError(t, service.UpdateOption(context.Background(), "processor", 1, "i7-13700"))
	require.NoError(t, service.DeleteOption(context.Background(), "processor", 1))
	assert.Len(t, cache.dels, 3)
}

package catalogservice

import (
	"context"
	"time"

	"inventaris/models"
	"inventaris/providers"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

type CatalogService interface {
	ListOptions(ctx context.Context, catalog string, includeDeleted bool) ([]Option, error)
	CreateOption(ctx context.Context, catalog, value string) (int64, error)
	UpdateOption(ctx context.Context, catalog string, id int64, value string) error
	DeleteOption(ctx context.Context, catalog string, id int64) error
}

type catalogService struct {
	repo   CatalogRepository
	cache  providers.CacheProvider
	logger providers.ZapLoggerProvider
}

func NewCatalogService(repo CatalogRepository, cache providers.CacheProvider, logger providers.ZapLoggerProvider) CatalogService {
	return &catalogService{repo: repo, cache: cache, logger: logger}
}

func cacheKey(table string) string {
	return "catalog:" + table
}

// ListOptions serves the full row set through a cache-aside redis entry.
// includeDeleted=false is the dropdown view: soft-deleted rows are filtered
// out. Display lookups pass includeDeleted=true so historical references
// still resolve.
func (s *catalogService) ListOptions(ctx context.Context, catalog string, includeDeleted bool) ([]Option, error) {
	table, ok := TableForCatalog(catalog)
	if !ok {
		return nil, models.NewNotFoundError("catalog "+catalog, 0)
	}

	options, ok := s.fromCache(ctx, table)
	if !ok {
		var err error
		options, err = s.repo.ListOptions(ctx, table)
		if err != nil {
			return nil, err
		}
		s.toCache(ctx, table, options)
	}

	if includeDeleted {
		return options, nil
	}
	selectable := make([]Option, 0, len(options))
	for _, option := range options {
		if !option.IsDeleted {
			selectable = append(selectable, option)
		}
	}
	return selectable, nil
}

func (s *catalogService) CreateOption(ctx context.Context, catalog, value string) (int64, error) {
	table, ok := TableForCatalog(catalog)
	if !ok {
		return 0, models.NewNotFoundError("catalog "+catalog, 0)
	}
	id, err := s.repo.InsertOption(ctx, table, value)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, table)
	return id, nil
}

func (s *catalogService) UpdateOption(ctx context.Context, catalog string, id int64, value string) error {
	table, ok := TableForCatalog(catalog)
	if !ok {
		return models.NewNotFoundError("catalog "+catalog, 0)
	}
	if err := s.repo.UpdateOption(ctx, table, id, value); err != nil {
		return err
	}
	s.invalidate(ctx, table)
	return nil
}

func (s *catalogService) DeleteOption(ctx context.Context, catalog string, id int64) error {
	table, ok := TableForCatalog(catalog)
	if !ok {
		return models.NewNotFoundError("catalog "+catalog, 0)
	}
	if err := s.repo.SoftDeleteOption(ctx, table, id); err != nil {
		return err
	}
	s.invalidate(ctx, table)
	return nil
}

// Cache failures never fail the request; the database is the source of truth
// and the cache is an invalidate-on-write view of it.
func (s *catalogService) fromCache(ctx context.Context, table string) ([]Option, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, cacheKey(table))
	if err != nil {
		return nil, false
	}
	var options []Option
	if err := jsoniter.UnmarshalFromString(raw, &options); err != nil {
		s.logger.GetLogger().Warn("corrupt catalog cache entry", zap.String("table", table), zap.Error(err))
		return nil, false
	}
	return options, true
}

func (s *catalogService) toCache(ctx context.Context, table string, options []Option) {
	if s.cache == nil {
		return
	}
	raw, err := jsoniter.MarshalToString(options)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(table), raw, cacheTTL); err != nil {
		s.logger.GetLogger().Warn("failed to cache catalog", zap.String("table", table), zap.Error(err))
	}
}

func (s *catalogService) invalidate(ctx context.Context, table string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKey(table)); err != nil {
		s.logger.GetLogger().Warn("failed to invalidate catalog cache", zap.String("table", table), zap.Error(err))
	}
}

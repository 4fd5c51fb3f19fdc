package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const keyPrefix = "schedule:service"

// cachedService представление услуги в кеше
type cachedService struct {
	ID              int64   `json:"id"`
	CompanyID       int64   `json:"company_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

// Cache read-through кеш каталога услуг поверх репозитория.
// Ошибки Redis не прерывают запрос: данные читаются из репозитория.
type Cache struct {
	repo   Repository
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewCache создает кеш услуг. Если client == nil, все вызовы идут напрямую в репозиторий.
func NewCache(repo Repository, client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		repo:   repo,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetByID возвращает услугу компании из кеша или из репозитория.
// Услуги без длительности не кешируются.
func (c *Cache) GetByID(ctx context.Context, companyID, serviceID int64) (*domain.Service, error) {
	if c.client == nil {
		return c.repo.GetByID(ctx, companyID, serviceID)
	}

	key := cacheKey(companyID, serviceID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedService
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached.toDomain(), nil
		}
		c.logger.Warn("service cache: corrupted entry %s, reloading", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("service cache: get %s failed: %v", key, err)
	}

	svc, err := c.repo.GetByID(ctx, companyID, serviceID)
	if err != nil {
		return nil, err
	}

	if svc.HasDuration() {
		c.store(ctx, key, svc)
	}

	return svc, nil
}

// Invalidate удаляет услугу из кеша. Сам сервис каталог не изменяет: метод для процессов,
// которые правят услуги в общей БД и должны сбросить запись до истечения TTL
// (ключ schedule:service:{companyId}:{serviceId}).
func (c *Cache) Invalidate(ctx context.Context, companyID, serviceID int64) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, cacheKey(companyID, serviceID)).Err(); err != nil {
		return fmt.Errorf("service cache: invalidate: %w", err)
	}
	return nil
}

func (c *Cache) store(ctx context.Context, key string, svc *domain.Service) {
	data, err := json.Marshal(fromDomain(svc))
	if err != nil {
		c.logger.Warn("service cache: marshal %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("service cache: set %s failed: %v", key, err)
	}
}

func cacheKey(companyID, serviceID int64) string {
	return fmt.Sprintf("%s:%d:%d", keyPrefix, companyID, serviceID)
}

func fromDomain(s *domain.Service) cachedService {
	return cachedService{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

func (c cachedService) toDomain() *domain.Service {
	return &domain.Service{
		ID:              c.ID,
		CompanyID:       c.CompanyID,
		Name:            c.Name,
		Price:           c.Price,
		DurationMinutes: c.DurationMinutes,
	}
}

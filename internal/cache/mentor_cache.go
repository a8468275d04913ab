package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/pkg/errors"
	"github.com/skymentor/skymentor-client/pkg/logger"
	"github.com/skymentor/skymentor-client/pkg/metrics"
	"go.uber.org/zap"
)

// MentorSource defines the mentor list fetcher the cache sits in front of.
// The backend API client implements it.
type MentorSource interface {
	List(ctx context.Context, limit, offset int) (*models.MentorList, error)
}

const (
	mentorKeyPrefix = "mentor:id:"
	allMentorsKey   = "mentor:all"
	refreshPageSize = 100
)

// MentorCache keeps the mentor directory in memory. Browse and
// quiz-results views re-fetch the same unfiltered list on every visit;
// serving it from here keeps those flows off the backend between
// refreshes.
type MentorCache struct {
	cache       *gocache.Cache
	source      MentorSource
	ttl         time.Duration
	mu          sync.RWMutex
	ready       bool
	lastRefresh time.Time
	stop        chan struct{}
	stopOnce    sync.Once
}

// NewMentorCache creates a mentor cache refreshing every ttlSeconds
func NewMentorCache(source MentorSource, ttlSeconds int) *MentorCache {
	return &MentorCache{
		cache:  gocache.New(gocache.NoExpiration, 10*time.Second),
		source: source,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		stop:   make(chan struct{}),
	}
}

// Initialize performs the initial synchronous population and starts the
// background refresh loop. Call during startup, before serving reads.
func (mc *MentorCache) Initialize(ctx context.Context) error {
	logger.Info("Initializing mentor cache...")
	start := time.Now()

	if err := mc.refresh(ctx); err != nil {
		logger.Error("Failed to initialize mentor cache", zap.Error(err))
		return err
	}

	mc.mu.Lock()
	mc.ready = true
	mc.mu.Unlock()

	logger.Info("Mentor cache initialized",
		zap.Duration("duration", time.Since(start)))

	go mc.refreshLoop()
	return nil
}

// Close stops the background refresh loop
func (mc *MentorCache) Close() {
	mc.stopOnce.Do(func() { close(mc.stop) })
}

// IsReady reports whether the initial population succeeded
func (mc *MentorCache) IsReady() bool {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.ready
}

// All returns the cached mentor directory. It never triggers a backend
// fetch on miss; a miss before initialization is an error.
func (mc *MentorCache) All() ([]models.Mentor, error) {
	if !mc.IsReady() {
		return nil, errors.InternalError("mentor cache not initialized")
	}

	data, found := mc.cache.Get(allMentorsKey)
	if !found {
		metrics.CacheMisses.WithLabelValues("mentor_all").Inc()
		return nil, errors.InternalError("mentor directory missing from cache")
	}
	metrics.CacheHits.WithLabelValues("mentor_all").Inc()

	mentors, ok := data.([]models.Mentor)
	if !ok {
		return nil, errors.InternalError("unexpected mentor cache entry type")
	}
	return mentors, nil
}

// List serves one page of the cached directory in the backend's list
// shape, so callers written against the list contract (browse, quiz
// results) read from the cache instead of the backend. Total reports the
// full directory size.
func (mc *MentorCache) List(ctx context.Context, limit, offset int) (*models.MentorList, error) {
	all, err := mc.All()
	if err != nil {
		return nil, err
	}

	total := len(all)
	if offset < 0 {
		offset = 0
	}
	page := []models.Mentor{}
	if offset < total {
		end := offset + limit
		if limit <= 0 || end > total {
			end = total
		}
		page = all[offset:end]
	}

	return &models.MentorList{
		Mentors: page,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// GetByID returns a single cached mentor
func (mc *MentorCache) GetByID(id string) (*models.Mentor, error) {
	if !mc.IsReady() {
		return nil, errors.InternalError("mentor cache not initialized")
	}

	data, found := mc.cache.Get(mentorKeyPrefix + id)
	if !found {
		metrics.CacheMisses.WithLabelValues("mentor_by_id").Inc()
		return nil, errors.NotFoundError("mentor")
	}
	metrics.CacheHits.WithLabelValues("mentor_by_id").Inc()

	mentor, ok := data.(models.Mentor)
	if !ok {
		return nil, errors.InternalError("unexpected mentor cache entry type")
	}
	return &mentor, nil
}

// LastRefresh returns when the directory was last fetched
func (mc *MentorCache) LastRefresh() time.Time {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.lastRefresh
}

// refresh fetches every mentor page from the backend and swaps the cache
// contents. A failed refresh keeps serving the previous snapshot.
func (mc *MentorCache) refresh(ctx context.Context) error {
	start := time.Now()

	var all []models.Mentor
	offset := 0
	for {
		page, err := mc.source.List(ctx, refreshPageSize, offset)
		if err != nil {
			metrics.CacheRefreshDuration.WithLabelValues("mentor", "error").Observe(metrics.MeasureDuration(start))
			return err
		}
		all = append(all, page.Mentors...)
		offset += refreshPageSize
		if len(page.Mentors) == 0 || len(all) >= page.Total {
			break
		}
	}

	mc.cache.Flush()
	mc.cache.Set(allMentorsKey, all, gocache.NoExpiration)
	for _, mentor := range all {
		mc.cache.Set(mentorKeyPrefix+mentor.ID, mentor, gocache.NoExpiration)
	}

	mc.mu.Lock()
	mc.lastRefresh = time.Now()
	mc.mu.Unlock()

	metrics.CacheRefreshDuration.WithLabelValues("mentor", "success").Observe(metrics.MeasureDuration(start))
	logger.Info("Mentor cache refreshed",
		zap.Int("mentor_count", len(all)),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (mc *MentorCache) refreshLoop() {
	ticker := time.NewTicker(mc.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-mc.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := mc.refresh(ctx); err != nil {
				logger.Warn("Mentor cache refresh failed, keeping previous snapshot",
					zap.Error(err))
			}
			cancel()
		}
	}
}

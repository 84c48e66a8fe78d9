package stats

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/alexivanou/cityportal-api/internal/config"
	"github.com/alexivanou/cityportal-api/internal/repository"
	"github.com/jmoiron/sqlx"
)

type Stats struct {
	Timestamp time.Time     `json:"timestamp"`
	Content   ContentStats  `json:"content"`
	Database  DatabaseStats `json:"database"`
	Memory    MemoryStats   `json:"memory"`
	Runtime   RuntimeStats  `json:"runtime"`
}

// ContentStats counts stored items per kind and translations per language.
type ContentStats struct {
	TotalItems        int64            `json:"totalItems"`
	TotalTranslations int64            `json:"totalTranslations"`
	Kinds             []KindStat       `json:"kinds"`
	Languages         map[string]int64 `json:"languages"`
}

type KindStat struct {
	Kind         string           `json:"kind"`
	Table        string           `json:"table"`
	Items        int64            `json:"items"`
	Translations int64            `json:"translations"`
	ByStatus     map[string]int64 `json:"byStatus,omitempty"`
}

type DatabaseStats struct {
	Type      string `json:"type"`
	SizeBytes int64  `json:"sizeBytes"`
}

type MemoryStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"numGc"`
	HeapInuse  uint64 `json:"heapInuse"`
}

type RuntimeStats struct {
	NumGoroutines int   `json:"numGoroutines"`
	NumCPU        int   `json:"numCpu"`
	UptimeSeconds int64 `json:"uptimeSeconds"`
}

// Collector gathers statistics about the stored content.
type Collector struct {
	db         *sqlx.DB
	config     config.DBConfig
	kinds      []repository.Kind
	startTime  time.Time
	cachedMem  *MemoryStats
	cacheTime  time.Time
	cacheMutex sync.RWMutex
}

var memStatsCacheDuration = 5 * time.Second

func NewCollector(db *sqlx.DB, cfg config.DBConfig) *Collector {
	return &Collector{
		db:        db,
		config:    cfg,
		kinds:     repository.Kinds(),
		startTime: time.Now(),
	}
}

func (c *Collector) Collect(ctx context.Context) (*Stats, error) {
	content, err := c.collectContent(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Timestamp: time.Now().UTC(),
		Content:   *content,
		Database:  DatabaseStats{Type: string(c.config.Type)},
		Memory:    c.collectMemoryStats(),
		Runtime:   c.collectRuntimeStats(),
	}
	if size, err := c.databaseSize(ctx); err == nil {
		stats.Database.SizeBytes = size
	}
	return stats, nil
}

func (c *Collector) collectContent(ctx context.Context) (*ContentStats, error) {
	out := &ContentStats{Languages: map[string]int64{}}
	for _, k := range c.kinds {
		ks := KindStat{Kind: k.Name, Table: k.Table}

		if err := c.db.GetContext(ctx, &ks.Items, "SELECT COUNT(*) FROM "+k.Table); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", k.Name, err)
		}

		if k.VisibleStatus != "" {
			byStatus, err := c.countGrouped(ctx, "SELECT status AS k, COUNT(*) AS n FROM "+k.Table+" GROUP BY status")
			if err != nil {
				return nil, fmt.Errorf("failed to count %s by status: %w", k.Name, err)
			}
			ks.ByStatus = byStatus
		}

		byLang, err := c.countGrouped(ctx, "SELECT language AS k, COUNT(*) AS n FROM "+k.TranslationTable+" GROUP BY language")
		if err != nil {
			return nil, fmt.Errorf("failed to count %s translations: %w", k.Name, err)
		}
		for lang, n := range byLang {
			ks.Translations += n
			out.Languages[lang] += n
		}

		out.TotalItems += ks.Items
		out.TotalTranslations += ks.Translations
		out.Kinds = append(out.Kinds, ks)
	}
	sort.Slice(out.Kinds, func(i, j int) bool { return out.Kinds[i].Kind < out.Kinds[j].Kind })
	return out, nil
}

func (c *Collector) countGrouped(ctx context.Context, query string) (map[string]int64, error) {
	var rows []struct {
		Key string `db:"k"`
		N   int64  `db:"n"`
	}
	if err := c.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.N
	}
	return out, nil
}

func (c *Collector) databaseSize(ctx context.Context) (int64, error) {
	var size int64
	var err error
	if c.config.Type == config.DBTypePostgreSQL {
		err = c.db.GetContext(ctx, &size, "SELECT pg_database_size(current_database())")
	} else {
		err = c.db.GetContext(ctx, &size, "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()")
	}
	return size, err
}

func (c *Collector) collectMemoryStats() MemoryStats {
	c.cacheMutex.RLock()
	if c.cachedMem != nil && time.Since(c.cacheTime) < memStatsCacheDuration {
		mem := *c.cachedMem
		c.cacheMutex.RUnlock()
		return mem
	}
	c.cacheMutex.RUnlock()

	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mem := MemoryStats{
		Alloc:      m.Alloc,
		TotalAlloc: m.TotalAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		HeapInuse:  m.HeapInuse,
	}
	c.cachedMem = &mem
	c.cacheTime = time.Now()
	return mem
}

func (c *Collector) collectRuntimeStats() RuntimeStats {
	return RuntimeStats{
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		UptimeSeconds: int64(time.Since(c.startTime).Seconds()),
	}
}

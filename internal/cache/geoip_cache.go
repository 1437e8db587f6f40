package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"go-gin-event-booking/internal/model"
	"go-gin-event-booking/pkg/logger"

	"github.com/jonboulle/clockwork"
	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrGeoIPUnavailable = errors.New("geoip dataset unavailable")

// GeoIPLocator resolves an IP address to an approximate location.
type GeoIPLocator interface {
	Locate(ctx context.Context, ip string) (*model.GeoLocation, error)
}

// GeoIPDatabase is an opened dataset.
type GeoIPDatabase interface {
	Lookup(ip net.IP) (*model.GeoLocation, error)
	Close() error
}

// DatasetFetcher downloads the raw dataset blob.
type DatasetFetcher func(ctx context.Context) ([]byte, error)

// DatasetOpener parses a blob into a GeoIPDatabase.
type DatasetOpener func(blob []byte) (GeoIPDatabase, error)

// GeoIPCache owns the dataset for the process lifetime and refreshes it once the TTL has passed.
// A failed refresh keeps the previous dataset in service. Replaced datasets are never closed,
// since lookups that started before the swap may still be reading them.
type GeoIPCache struct {
	clock   clockwork.Clock
	ttl     time.Duration
	fetch   DatasetFetcher
	open    DatasetOpener
	refresh singleflight.Group

	mu       sync.Mutex
	db       GeoIPDatabase
	loadedAt time.Time
}

func NewGeoIPCache(clock clockwork.Clock, ttl time.Duration, fetch DatasetFetcher, open DatasetOpener) *GeoIPCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if open == nil {
		open = OpenMaxMindDataset
	}
	return &GeoIPCache{
		clock: clock,
		ttl:   ttl,
		fetch: fetch,
		open:  open,
	}
}

func (c *GeoIPCache) Locate(ctx context.Context, ip string) (*model.GeoLocation, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("invalid ip %q", ip)
	}

	db, err := c.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return db.Lookup(parsed)
}

func (c *GeoIPCache) dataset(ctx context.Context) (GeoIPDatabase, error) {
	c.mu.Lock()
	db, fresh := c.current()
	c.mu.Unlock()
	if fresh {
		return db, nil
	}

	if c.fetch == nil {
		if db != nil {
			return db, nil
		}
		return nil, ErrGeoIPUnavailable
	}

	// the download outlives any single caller; waiters give up on their own context
	ch := c.refresh.DoChan("dataset", func() (any, error) {
		return c.load(context.WithoutCancel(ctx))
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		if db != nil {
			return db, nil
		}
		return nil, ctx.Err()
	}

	if res.Err == nil {
		return res.Val.(GeoIPDatabase), nil
	}
	if db != nil {
		logger.WithComponent("geoip").Warn("geoip refresh failed, serving stale dataset", zap.Error(res.Err))
		return db, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrGeoIPUnavailable, res.Err)
}

// current must be called with mu held.
func (c *GeoIPCache) current() (GeoIPDatabase, bool) {
	return c.db, c.db != nil && c.clock.Now().Sub(c.loadedAt) < c.ttl
}

// load downloads and opens a dataset without holding mu, then swaps it in.
func (c *GeoIPCache) load(ctx context.Context) (GeoIPDatabase, error) {
	c.mu.Lock()
	db, fresh := c.current()
	c.mu.Unlock()
	if fresh {
		return db, nil
	}

	blob, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	db, err = c.open(blob)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.db = db
	c.loadedAt = c.clock.Now()
	c.mu.Unlock()

	logger.WithComponent("geoip").Info("geoip dataset loaded", zap.Int("bytes", len(blob)))
	return db, nil
}

// LoadedAt is the zero time until a dataset has been loaded.
func (c *GeoIPCache) LoadedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadedAt
}

// Close releases the current dataset. It must not race with Locate.
func (c *GeoIPCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

type maxMindDatabase struct {
	reader *geoip2.Reader
}

func OpenMaxMindDataset(blob []byte) (GeoIPDatabase, error) {
	reader, err := geoip2.FromBytes(blob)
	if err != nil {
		return nil, err
	}
	return &maxMindDatabase{reader: reader}, nil
}

func (d *maxMindDatabase) Lookup(ip net.IP) (*model.GeoLocation, error) {
	city, err := d.reader.City(ip)
	if err != nil {
		return nil, err
	}
	if city.Location.Latitude == 0 && city.Location.Longitude == 0 {
		return nil, nil
	}
	return &model.GeoLocation{
		Lat:     city.Location.Latitude,
		Lng:     city.Location.Longitude,
		City:    city.City.Names["en"],
		Country: city.Country.IsoCode,
	}, nil
}

func (d *maxMindDatabase) Close() error {
	return d.reader.Close()
}

// HTTPDatasetFetcher downloads the dataset from url.
func HTTPDatasetFetcher(client *http.Client, url string) DatasetFetcher {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return func(ctx context.Context) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("geoip download: unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
}

package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/sojourn/pkg/trip"
)

// Meta is a stored trip's directory line.
type Meta struct {
	ID    string
	Name  string
	Days  int
	Items int
}

// Persistence is the trip document store: the source itinerary provider on
// read and the commit-back channel on write. The export engine itself only
// writes through it when the user asks for a commit.
type Persistence interface {
	Trips(ctx context.Context) []Meta
	Load(ctx context.Context, id string) (*trip.Data, error)
	Save(id string, data *trip.Data) error
	Delete(id string) error
}

// ErrNoTrip signals an unknown trip id.
var ErrNoTrip = errors.New("store: no such trip")

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*trip.Data, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	data := &trip.Data{}
	if err := json.Unmarshal(val, data); err != nil {
		return nil, fmt.Errorf("store: decode trip %s: %w", fromID(key), err)
	}
	return data, nil
}

func (p *persistence) Trips(ctx context.Context) []Meta {
	all := make([]Meta, 0)
	for key := range p.d.Keys(ctx.Done()) {
		data, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, Meta{
			ID:    fromID(key),
			Name:  data.Name,
			Days:  len(data.Itinerary),
			Items: data.Itinerary.Items(),
		})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all
}

func (p *persistence) Load(ctx context.Context, id string) (*trip.Data, error) {
	key := toID(id)
	if !p.d.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrNoTrip, id)
	}
	return p.read(key)
}

func (p *persistence) Save(id string, data *trip.Data) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("store: trip id required")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return p.d.Write(toID(id), b)
}

func (p *persistence) Delete(id string) error {
	return p.d.Erase(toID(id))
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{"trips"},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

// Trip ids are user text; base64 keeps them filesystem-safe.
func toID(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func fromID(s string) string {
	id, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("fromID: %s", err)
	}
	return string(id)
}

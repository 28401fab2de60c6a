package cachestore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/refcache/internal/adapters/logger"
	"go.trai.ch/refcache/internal/core/ports"
)

// NodeID is the unique identifier for the cache provider Graft node.
const NodeID graft.ID = "adapter.cache_provider"

func init() {
	graft.Register(graft.Node[ports.CacheProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheProvider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(log), nil
		},
	})
}

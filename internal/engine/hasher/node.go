package hasher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/adapters/config"
	"go.trai.ch/stamp/internal/adapters/digest"
	"go.trai.ch/stamp/internal/adapters/fs"
	"go.trai.ch/stamp/internal/adapters/logger"
	"go.trai.ch/stamp/internal/adapters/manifest"
	"go.trai.ch/stamp/internal/core/ports"
)

const NodeID graft.ID = "engine.hasher"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			digest.NodeID,
			fs.LocatorNodeID,
			manifest.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.StaleLocator](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			opts, err := loader.Load(".")
			if err != nil {
				return nil, err
			}

			return New(digester, locator, store, log, opts), nil
		},
	})
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nudge/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/nudge/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/nudge/internal/adapters/notifyfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/nudge/internal/adapters/sysclock"   //nolint:depguard // Wired in app layer
	"go.trai.ch/nudge/internal/core/ports"
	"go.trai.ch/nudge/internal/engine/reconciler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application with its shared dependencies.
type Components struct {
	App    *App
	Logger ports.Logger
	Store  ports.NotificationStore
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			reconciler.NodeID,
			notifyfile.NodeID,
			sysclock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.PlanLoader](ctx)
			if err != nil {
				return nil, err
			}

			rec, err := graft.Dep[*reconciler.Reconciler](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.NotificationStore](ctx)
			if err != nil {
				return nil, err
			}

			clock, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, rec, store, clock, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			notifyfile.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.NotificationStore](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
				Store:  store,
			}, nil
		},
	})
}

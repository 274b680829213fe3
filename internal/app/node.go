package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/overlay/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/overlay/internal/adapters/compiler"  //nolint:depguard // Wired in app layer
	"go.trai.ch/overlay/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/overlay/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/overlay/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/overlay/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/overlay/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/overlay/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.NodeID,
			compiler.NodeID,
			cas.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	comp, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	manifest, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher := func() (ports.Watcher, error) {
		return watcher.NewWatcher(log)
	}

	return New(loader, fsys, comp, manifest, log, tracer, newWatcher), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}

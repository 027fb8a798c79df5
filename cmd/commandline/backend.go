package main

import (
	"context"

	"github.com/ethanbaker/highlevel/internal/actions"
	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/ethanbaker/highlevel/pkg/highlevel"
	"github.com/ethanbaker/highlevel/pkg/sdk"
	"github.com/ethanbaker/highlevel/pkg/utils"
)

// backend runs actions either in-process or through a runner
type backend interface {
	List(ctx context.Context) ([]action.Definition, error)
	Props(ctx context.Context, key string, values action.Values) ([]action.Prop, error)
	Run(ctx context.Context, key string, values action.Values) (*sdk.RunResponse, error)
}

// newBackend connects to the runner at server, or to HighLevel directly when
// server is empty
func newBackend(ctx context.Context, cfg *utils.Config, server, apiKey string) (backend, error) {
	if server != "" {
		if apiKey == "" {
			apiKey = cfg.Get(utils.KeyAPIKey)
		}
		return &remoteBackend{client: sdk.NewClient(server, apiKey)}, nil
	}

	app, err := highlevel.NewClientFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	reg, err := actions.NewRegistry(app)
	if err != nil {
		return nil, err
	}
	return &localBackend{registry: reg}, nil
}

type localBackend struct {
	registry *action.Registry
}

func (b *localBackend) List(ctx context.Context) ([]action.Definition, error) {
	defs := []action.Definition{}
	for _, a := range b.registry.List() {
		defs = append(defs, a.Definition())
	}
	return defs, nil
}

func (b *localBackend) Props(ctx context.Context, key string, values action.Values) ([]action.Prop, error) {
	a, err := b.registry.Get(key)
	if err != nil {
		return nil, err
	}
	return action.Resolve(ctx, a, values)
}

func (b *localBackend) Run(ctx context.Context, key string, values action.Values) (*sdk.RunResponse, error) {
	a, err := b.registry.Get(key)
	if err != nil {
		return nil, err
	}

	result, err := action.Invoke(ctx, a, values)
	if err != nil {
		return nil, err
	}

	return &sdk.RunResponse{
		ID:       result.ID,
		Summary:  result.Summary,
		Exports:  result.Exports,
		Response: result.Response,
	}, nil
}

type remoteBackend struct {
	client *sdk.Client
}

func (b *remoteBackend) List(ctx context.Context) ([]action.Definition, error) {
	return b.client.ListActions(ctx)
}

func (b *remoteBackend) Props(ctx context.Context, key string, values action.Values) ([]action.Prop, error) {
	return b.client.ResolveProps(ctx, key, values)
}

func (b *remoteBackend) Run(ctx context.Context, key string, values action.Values) (*sdk.RunResponse, error) {
	return b.client.RunAction(ctx, key, values)
}

package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/cli/config"
	"github.com/secmon-lab/orgchart/pkg/editor"
	"github.com/secmon-lab/orgchart/pkg/service/store"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// loadChart connects to the store and performs the initial load
func loadChart(ctx context.Context, storeCfg config.Store) (*editor.Chart, *store.Client, error) {
	client, err := storeCfg.Configure()
	if err != nil {
		return nil, nil, err
	}

	chart := editor.NewChart(client)
	if err := chart.Load(ctx); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load employees", goerr.V("store", storeCfg.URL))
	}
	return chart, client, nil
}

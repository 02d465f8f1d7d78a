package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore selects where the store keeps employees. Without a project the
// store runs in memory.
type Firestore struct {
	ProjectID  string
	DatabaseID string
	Collection string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore (in-memory store if omitted)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("ORGCHART_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("ORGCHART_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Collection holding employee documents",
			Category:    "Firestore",
			Value:       repository.DefaultCollection,
			Sources:     cli.EnvVars("ORGCHART_FIRESTORE_COLLECTION"),
			Destination: &f.Collection,
		},
	}
}

// Configure opens the employee repository
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if f.ProjectID == "" {
		ctxlog.From(ctx).Warn("No Firestore project, employees are kept in memory and lost on shutdown")
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID, repository.WithCollection(f.Collection))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open employee repository",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
			goerr.V("collection", f.Collection),
		)
	}
	return repo, nil
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
		slog.String("collection", f.Collection),
	)
}

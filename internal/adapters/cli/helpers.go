package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"gorm.io/gorm"

	"github.com/premiertools/planner/internal/adapters/api"
	"github.com/premiertools/planner/internal/adapters/persistence"
	"github.com/premiertools/planner/internal/application/mediator"
	"github.com/premiertools/planner/internal/application/planner"
	"github.com/premiertools/planner/internal/infrastructure/config"
	"github.com/premiertools/planner/internal/infrastructure/database"

	compositioncommands "github.com/premiertools/planner/internal/application/composition/commands"
	compositionqueries "github.com/premiertools/planner/internal/application/composition/queries"
	rostercommands "github.com/premiertools/planner/internal/application/roster/commands"
	rosterqueries "github.com/premiertools/planner/internal/application/roster/queries"
	rotationcommands "github.com/premiertools/planner/internal/application/rotation/commands"
	rotationqueries "github.com/premiertools/planner/internal/application/rotation/queries"
	snapshotcommands "github.com/premiertools/planner/internal/application/snapshot/commands"
	teamcommands "github.com/premiertools/planner/internal/application/team/commands"
)

// app bundles everything a command needs: the loaded config, the open
// database, the initialized planner service, and the mediator with all
// handlers registered.
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	service  *planner.Service
	mediator mediator.Mediator
	catalog  *api.CachedCatalogClient
}

// newApp loads config, opens the database, builds the catalog client and
// repositories, and initializes the planner service. Every command goes
// through here so the state each command sees is always fully loaded.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	live := api.NewValorantClientWithConfig(
		cfg.API.BaseURL,
		cfg.API.Timeout,
		cfg.API.RateLimit.Requests,
		cfg.API.RateLimit.Burst,
		cfg.API.Retry.MaxAttempts,
		cfg.API.Retry.BackoffBase,
	)
	catalogClient := api.NewCachedCatalogClient(live, persistence.NewGormCatalogCache(db), cfg.Catalog.CacheTTL)
	catalogClient.Offline = cfg.Catalog.Offline || offline

	service := planner.NewService(persistence.NewGormStateRepository(db), catalogClient)
	if err := service.Initialize(ctx, shareFragment); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to initialize planner: %w", err)
	}

	a := &app{
		cfg:      cfg,
		db:       db,
		service:  service,
		mediator: mediator.New(),
		catalog:  catalogClient,
	}
	if err := a.registerHandlers(); err != nil {
		database.Close(db)
		return nil, err
	}
	return a, nil
}

func (a *app) registerHandlers() error {
	registrations := []error{
		mediator.RegisterHandler[*teamcommands.SetTeamNameCommand](a.mediator, teamcommands.NewSetTeamNameHandler(a.service)),
		mediator.RegisterHandler[*rostercommands.RenamePlayerCommand](a.mediator, rostercommands.NewRenamePlayerHandler(a.service)),
		mediator.RegisterHandler[*rostercommands.ToggleAgentCommand](a.mediator, rostercommands.NewToggleAgentHandler(a.service)),
		mediator.RegisterHandler[*rostercommands.AddSubstituteCommand](a.mediator, rostercommands.NewAddSubstituteHandler(a.service)),
		mediator.RegisterHandler[*rostercommands.RemoveSubstituteCommand](a.mediator, rostercommands.NewRemoveSubstituteHandler(a.service)),
		mediator.RegisterHandler[*rosterqueries.GetRosterQuery](a.mediator, rosterqueries.NewGetRosterHandler(a.service)),
		mediator.RegisterHandler[*compositioncommands.UpdateSlotCommand](a.mediator, compositioncommands.NewUpdateSlotHandler(a.service)),
		mediator.RegisterHandler[*compositionqueries.GetCompositionQuery](a.mediator, compositionqueries.NewGetCompositionHandler(a.service)),
		mediator.RegisterHandler[*compositionqueries.AvailableAgentsQuery](a.mediator, compositionqueries.NewAvailableAgentsHandler(a.service)),
		mediator.RegisterHandler[*rotationcommands.ToggleMapCommand](a.mediator, rotationcommands.NewToggleMapHandler(a.service)),
		mediator.RegisterHandler[*rotationqueries.ListMapsQuery](a.mediator, rotationqueries.NewListMapsHandler(a.service)),
		mediator.RegisterHandler[*snapshotcommands.ExportPlanCommand](a.mediator, snapshotcommands.NewExportPlanHandler(a.service)),
		mediator.RegisterHandler[*snapshotcommands.ImportPlanCommand](a.mediator, snapshotcommands.NewImportPlanHandler(a.service)),
		mediator.RegisterHandler[*snapshotcommands.EncodeShareCommand](a.mediator, snapshotcommands.NewEncodeShareHandler(a.service)),
	}
	for _, err := range registrations {
		if err != nil {
			return fmt.Errorf("failed to register handler: %w", err)
		}
	}
	return nil
}

// Close releases the database connection
func (a *app) Close() {
	database.Close(a.db)
}

// newTabWriter creates a tabwriter for aligned column output
func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
}

// truncate shortens a string for table display
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// sharedNotice warns when commands run against a shared view, whose
// mutations are never written back to local state.
func sharedNotice(a *app) {
	if a.service.ViewingShared() {
		fmt.Println("(viewing shared roster - changes will not be saved)")
	}
}

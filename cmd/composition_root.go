package cmd

import (
	"log/slog"

	"stowage/internal/adapters/out/notifier"
	"stowage/internal/adapters/out/postgres"
	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/application/usecases/queries"
	"stowage/internal/core/domain/model/container"
	"stowage/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   container.HazardNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	hazardNotifier := notifier.NewSlogHazardNotifier(logger)
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, hazardNotifier),
		notifier:   hazardNotifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterShipCommandHandler() commands.RegisterShipCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterShipCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterContainerCommandHandler() commands.RegisterContainerCommandHandler {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterContainerCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateLoadCargoCommandHandler() commands.LoadCargoCommandHandler {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoadCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateEmptyContainerCommandHandler() commands.EmptyContainerCommandHandler {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEmptyContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateStowContainerCommandHandler() commands.StowContainerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewStowContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateUnstowContainerCommandHandler() commands.UnstowContainerCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnstowContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateAutoStowCommandHandler() commands.AutoStowCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoStowCommandHandler(f)
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHazardousContainersQueryHandler() queries.GetHazardousContainersQueryHandler {
	return queries.NewGetHazardousContainersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetHazardousContainersQueryHandler(),
		c.CreateAutoStowCommandHandler(),
		c.notifier,
		c.logger,
	)
}

type FuncShipUoWFactory func() commands.ShipUoW

func (f FuncShipUoWFactory) Create() commands.ShipUoW {
	return f()
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

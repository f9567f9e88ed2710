package cmd

import (
	"log/slog"

	httpadapter "workorders/internal/adapters/in/http"
	"workorders/internal/adapters/out/notify"
	"workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/postgres/userdir"
	"workorders/internal/adapters/out/postgres/workorderrepo"
	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/ports"
	"workorders/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewLogNotifier(config.NotifierSender, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workOrderUoW() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	return commands.NewCreateWorkOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateUpdateWorkOrderCommandHandler() commands.UpdateWorkOrderCommandHandler {
	return commands.NewUpdateWorkOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateReorderWorkOrdersCommandHandler() commands.ReorderWorkOrdersCommandHandler {
	return commands.NewReorderWorkOrdersCommandHandler(c.workOrderUoW())
}

func (c *CompositionRoot) CreateDeleteWorkOrderCommandHandler() commands.DeleteWorkOrderCommandHandler {
	return commands.NewDeleteWorkOrderCommandHandler(c.workOrderUoW())
}

func (c *CompositionRoot) CreateSendCustomerSummaryCommandHandler() commands.SendCustomerSummaryCommandHandler {
	return commands.NewSendCustomerSummaryCommandHandler(c.workOrderUoW(), c.notifier)
}

func (c *CompositionRoot) CreateNormalizeLegacyStatesCommandHandler() commands.NormalizeLegacyStatesCommandHandler {
	return commands.NewNormalizeLegacyStatesCommandHandler(c.workOrderUoW())
}

func (c *CompositionRoot) CreateListWorkOrdersQueryHandler() queries.ListWorkOrdersQueryHandler {
	return queries.NewListWorkOrdersQueryHandler(workorderrepo.NewGormWorkOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(workorderrepo.NewGormWorkOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateListTechniciansQueryHandler() queries.ListTechniciansQueryHandler {
	return queries.NewListTechniciansQueryHandler(userdir.NewGormTechnicianDirectory(c.gormDB))
}

func (c *CompositionRoot) CreateGetStateDistributionQueryHandler() queries.GetStateDistributionQueryHandler {
	return queries.NewGetStateDistributionQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	auth, err := httpadapter.NewAuthenticator(c.config.JWTSecret)
	if err != nil {
		return nil, err
	}

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateWorkOrder:      c.CreateCreateWorkOrderCommandHandler(),
		UpdateWorkOrder:      c.CreateUpdateWorkOrderCommandHandler(),
		ReorderWorkOrders:    c.CreateReorderWorkOrdersCommandHandler(),
		DeleteWorkOrder:      c.CreateDeleteWorkOrderCommandHandler(),
		SendCustomerSummary:  c.CreateSendCustomerSummaryCommandHandler(),
		ListWorkOrders:       c.CreateListWorkOrdersQueryHandler(),
		GetWorkOrder:         c.CreateGetWorkOrderQueryHandler(),
		ListTechnicians:      c.CreateListTechniciansQueryHandler(),
		GetStateDistribution: c.CreateGetStateDistributionQueryHandler(),
	}, auth, c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateNormalizeLegacyStatesCommandHandler(),
		c.config.LegacyStateSweepSchedule,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

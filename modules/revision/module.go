package revision

import (
	"github.com/eprocurement-ocds/revision/modules/revision/domain/amendment"
	"github.com/eprocurement-ocds/revision/modules/revision/infrastructure/persistence"
	"github.com/eprocurement-ocds/revision/modules/revision/presentation/controllers"
	"github.com/eprocurement-ocds/revision/modules/revision/services"
	"github.com/eprocurement-ocds/revision/pkg/application"
	"github.com/eprocurement-ocds/revision/pkg/configuration"
)

type Module struct{}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "revision"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()

	repo := persistence.NewAmendmentRepository()
	amendmentService := services.NewAmendmentService(repo, services.NewUUIDGenerator(), app.EventPublisher())
	app.RegisterServices(amendmentService)

	app.RegisterControllers(
		controllers.NewCommandController(amendmentService, conf.Service),
		controllers.NewHealthController(),
	)

	// Audit trail of issued amendments, correlated by process ids.
	logger := conf.Logger()
	app.EventPublisher().Subscribe(func(event amendment.CreatedEvent) {
		logger.WithFields(map[string]any{
			"cpid":         event.Cpid.String(),
			"ocid":         event.Ocid.String(),
			"amendment-id": event.Result.ID().String(),
			"relates-to":   string(event.Result.RelatesTo()),
			"related-item": event.Result.RelatedItem(),
		}).Info("amendment created")
	})
	return nil
}

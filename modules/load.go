package modules

import (
	"github.com/eprocurement-ocds/revision/modules/revision"
	"github.com/eprocurement-ocds/revision/pkg/application"
)

// BuiltIn returns every module compiled into this binary.
func BuiltIn() []application.Module {
	return []application.Module{
		revision.NewModule(),
	}
}

// Load registers the given modules with the application.
func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}

package application

import (
	"fmt"
	"reflect"

	"github.com/gorilla/mux"

	"github.com/eprocurement-ocds/revision/pkg/eventbus"
)

// Controller registers a set of routes under a unique key.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module is a self-contained vertical slice that wires its services and
// controllers into the application.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	RegisterServices(services ...interface{})
	// Service looks up a registered service by example value:
	// app.Service(services.AmendmentService{}).(*services.AmendmentService)
	Service(service interface{}) interface{}
	RegisterControllers(controllers ...Controller)
	Controllers() []Controller
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	Middleware() []mux.MiddlewareFunc
	EventPublisher() eventbus.EventBus
}

func New(eventPublisher eventbus.EventBus) Application {
	return &application{
		eventPublisher: eventPublisher,
		services:       map[reflect.Type]interface{}{},
	}
}

type application struct {
	eventPublisher eventbus.EventBus
	services       map[reflect.Type]interface{}
	controllers    []Controller
	middleware     []mux.MiddlewareFunc
}

func (a *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		a.services[serviceKey(service)] = service
	}
}

func (a *application) Service(service interface{}) interface{} {
	svc, ok := a.services[serviceKey(service)]
	if !ok {
		panic(fmt.Sprintf("service %T not found", service))
	}
	return svc
}

func (a *application) RegisterControllers(controllers ...Controller) {
	a.controllers = append(a.controllers, controllers...)
}

func (a *application) Controllers() []Controller {
	return a.controllers
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}

func (a *application) EventPublisher() eventbus.EventBus {
	return a.eventPublisher
}

func serviceKey(service interface{}) reflect.Type {
	t := reflect.TypeOf(service)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

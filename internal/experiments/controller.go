package experiments

import (
	"context"
	"sync"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
	"github.com/emiliopalmerini/srsadmin/internal/ports"
)

// Toast texts shown by the controller.
const (
	TitleValidationError = "Error"
	BodyEmptyName        = "The experiment name must not be empty!"

	TitleCreated      = "Experiment Created"
	BodyCreatedPrefix = "An experiment token was successfully created for you: "

	TitleCreateFailed = "Experiment Creation Failed"
	BodyCreateFailed  = "Could not generate an experiment token due to technical issues."
)

// Controller mediates between operator actions, the Store and the admin API.
// One Controller belongs to one console session.
type Controller struct {
	api   ports.ExperimentAPI
	sink  ports.NotificationSink
	store *Store

	mu   sync.Mutex
	name string
}

// NewController returns a controller with an empty experiment list.
func NewController(api ports.ExperimentAPI, sink ports.NotificationSink) *Controller {
	return &Controller{
		api:   api,
		sink:  sink,
		store: NewStore(api),
	}
}

// LoadExperimentList refreshes the experiment list. Failures are ignored and
// the previous list stays visible.
func (c *Controller) LoadExperimentList(ctx context.Context) {
	_ = c.store.Refresh(ctx)
}

// GetExperimentList returns the current experiment list.
func (c *Controller) GetExperimentList() []domain.Experiment {
	return c.store.List()
}

// SetExperimentName updates the name held for the next create.
func (c *Controller) SetExperimentName(name string) {
	c.mu.Lock()
	c.name = name
	c.mu.Unlock()
}

// ExperimentName returns the name held for the next create. It is not
// cleared by a submission.
func (c *Controller) ExperimentName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// CreatePendingExperimentToken submits the held name.
func (c *Controller) CreatePendingExperimentToken(ctx context.Context) {
	c.CreateExperimentToken(ctx, c.ExperimentName())
}

// CreateExperimentToken asks the backend for a new experiment token and
// reports the outcome as a toast. An empty name is rejected locally.
// On success the experiment list is fetched again.
func (c *Controller) CreateExperimentToken(ctx context.Context, name string) {
	if name == "" {
		c.sink.Pop(domain.Notification{
			Title:    TitleValidationError,
			Body:     BodyEmptyName,
			Severity: domain.SeverityError,
		})
		return
	}

	created, err := c.api.CreateExperiment(ctx, name)
	if err != nil {
		c.sink.Pop(domain.Notification{
			Title:    TitleCreateFailed,
			Body:     BodyCreateFailed,
			Severity: domain.SeverityError,
		})
		return
	}

	c.sink.Pop(domain.Notification{
		Title:    TitleCreated,
		Body:     BodyCreatedPrefix + created.Token,
		Severity: domain.SeveritySuccess,
	})
	c.LoadExperimentList(ctx)
}

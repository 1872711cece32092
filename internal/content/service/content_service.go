package service

import (
	"context"
	"time"

	"github.com/nexus-blend/showcase-api/internal/content/domain"
	"github.com/nexus-blend/showcase-api/internal/content/events"
	"github.com/nexus-blend/showcase-api/internal/content/repository"
	"github.com/nexus-blend/showcase-api/internal/logging"
)

// Input is a request body that validates itself and merges into a record.
type Input[T any] interface {
	repository.Input[T]
	Validate(partial bool) error
}

// Collection validates input, delegates to the repository and announces
// every successful mutation on the event publisher.
type Collection[T any, In Input[T]] struct {
	repo   *repository.Repo[T, In]
	events events.Publisher
	idOf   func(T) string
}

func newCollection[T any, In Input[T]](repo *repository.Repo[T, In], pub events.Publisher, idOf func(T) string) *Collection[T, In] {
	return &Collection[T, In]{repo: repo, events: pub, idOf: idOf}
}

func (c *Collection[T, In]) Kind() domain.Kind { return c.repo.Kind() }

func (c *Collection[T, In]) List(ctx context.Context) []T {
	return c.repo.List()
}

func (c *Collection[T, In]) Get(ctx context.Context, id string) (T, error) {
	return c.repo.Get(id)
}

// Create requires every mandatory field of in.
func (c *Collection[T, In]) Create(ctx context.Context, in In) (T, error) {
	if err := in.Validate(false); err != nil {
		var zero T
		return zero, err
	}
	rec := c.repo.Create(in)
	c.emit(ctx, events.ActionCreated, c.idOf(rec))
	return rec, nil
}

// Update accepts any subset of fields; supplied ones must be valid.
func (c *Collection[T, In]) Update(ctx context.Context, id string, in In) (T, error) {
	if err := in.Validate(true); err != nil {
		var zero T
		return zero, err
	}
	rec, err := c.repo.Update(id, in)
	if err != nil {
		return rec, err
	}
	c.emit(ctx, events.ActionUpdated, id)
	return rec, nil
}

// Delete reports whether the record existed.
func (c *Collection[T, In]) Delete(ctx context.Context, id string) bool {
	if !c.repo.Delete(id) {
		return false
	}
	c.emit(ctx, events.ActionDeleted, id)
	return true
}

// emit never fails the request; a lost event is only logged.
func (c *Collection[T, In]) emit(ctx context.Context, action events.Action, id string) {
	e := events.Event{Kind: c.repo.Kind(), Action: action, ID: id, At: time.Now().UTC()}
	if err := c.events.Publish(ctx, e); err != nil {
		logging.FromContext(ctx).Error("publish_"+string(e.Kind)+"_"+string(action), err)
	}
}

// ContentService exposes one Collection per content kind.
type ContentService struct {
	Projects     *Collection[domain.Project, domain.ProjectInput]
	Services     *Collection[domain.Service, domain.ServiceInput]
	Team         *Collection[domain.TeamMember, domain.TeamMemberInput]
	Testimonials *Collection[domain.Testimonial, domain.TestimonialInput]
	Contacts     *Collection[domain.ContactSubmission, domain.ContactInput]
}

func NewContentService(store *repository.Store, pub events.Publisher) *ContentService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &ContentService{
		Projects:     newCollection(store.Projects, pub, func(p domain.Project) string { return p.ID }),
		Services:     newCollection(store.Services, pub, func(s domain.Service) string { return s.ID }),
		Team:         newCollection(store.Team, pub, func(m domain.TeamMember) string { return m.ID }),
		Testimonials: newCollection(store.Testimonials, pub, func(t domain.Testimonial) string { return t.ID }),
		Contacts:     newCollection(store.Contacts, pub, func(s domain.ContactSubmission) string { return s.ID }),
	}
}

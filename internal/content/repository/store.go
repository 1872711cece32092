package repository

import (
	"time"

	"github.com/nexus-blend/showcase-api/internal/content/domain"
	"github.com/nexus-blend/showcase-api/internal/storage/memory"
)

type (
	ProjectRepo     = Repo[domain.Project, domain.ProjectInput]
	ServiceRepo     = Repo[domain.Service, domain.ServiceInput]
	TeamRepo        = Repo[domain.TeamMember, domain.TeamMemberInput]
	TestimonialRepo = Repo[domain.Testimonial, domain.TestimonialInput]
	ContactRepo     = Repo[domain.ContactSubmission, domain.ContactInput]
)

// Store owns every content table for the lifetime of the process.
type Store struct {
	Projects     *ProjectRepo
	Services     *ServiceRepo
	Team         *TeamRepo
	Testimonials *TestimonialRepo
	Contacts     *ContactRepo
}

func NewStore(opts ...memory.Option) *Store {
	return &Store{
		Projects: newRepo[domain.Project, domain.ProjectInput](
			domain.KindProjects,
			memory.NewTable(memory.NewestFirst(func(p domain.Project) time.Time { return p.CreatedAt }), opts...),
			func(id string, at time.Time) domain.Project {
				return domain.Project{ID: id, CreatedAt: at, Technologies: []string{}}
			},
		),
		Services: newRepo[domain.Service, domain.ServiceInput](
			domain.KindServices,
			memory.NewTable(memory.Ascending(func(s domain.Service) int { return s.Order }), opts...),
			func(id string, at time.Time) domain.Service {
				return domain.Service{ID: id, CreatedAt: at, Features: []string{}}
			},
		),
		Team: newRepo[domain.TeamMember, domain.TeamMemberInput](
			domain.KindTeam,
			memory.NewTable(memory.Ascending(func(m domain.TeamMember) int { return m.Order }), opts...),
			func(id string, at time.Time) domain.TeamMember {
				return domain.TeamMember{ID: id, CreatedAt: at}
			},
		),
		Testimonials: newRepo[domain.Testimonial, domain.TestimonialInput](
			domain.KindTestimonials,
			memory.NewTable(memory.NewestFirst(func(t domain.Testimonial) time.Time { return t.CreatedAt }), opts...),
			func(id string, at time.Time) domain.Testimonial {
				return domain.Testimonial{ID: id, CreatedAt: at}
			},
		),
		Contacts: newRepo[domain.ContactSubmission, domain.ContactInput](
			domain.KindContacts,
			memory.NewTable(memory.NewestFirst(func(c domain.ContactSubmission) time.Time { return c.CreatedAt }), opts...),
			func(id string, at time.Time) domain.ContactSubmission {
				return domain.ContactSubmission{ID: id, CreatedAt: at}
			},
		),
	}
}

// Counts returns the number of records per kind.
func (s *Store) Counts() map[domain.Kind]int {
	return map[domain.Kind]int{
		domain.KindProjects:     s.Projects.Count(),
		domain.KindServices:     s.Services.Count(),
		domain.KindTeam:         s.Team.Count(),
		domain.KindTestimonials: s.Testimonials.Count(),
		domain.KindContacts:     s.Contacts.Count(),
	}
}

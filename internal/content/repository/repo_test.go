package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/nexus-blend/showcase-api/internal/content/domain"
	"github.com/nexus-blend/showcase-api/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// tickingClock advances one second per call so newest-first order is
// driven by timestamps rather than by the insertion tiebreak.
func tickingClock() memory.Option {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return memory.WithClock(func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	})
}

func TestStore_CreateThenListContainsRecordOnce(t *testing.T) {
	s := NewStore()
	existing := s.Projects.Create(domain.ProjectInput{Title: ptr("existing")})

	created := s.Projects.Create(domain.ProjectInput{Title: ptr("fresh"), Technologies: ptr([]string{"Go"})})
	require.NotEmpty(t, created.ID)
	assert.NotEqual(t, existing.ID, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	hits := 0
	for _, p := range s.Projects.List() {
		if p.ID == created.ID {
			hits++
			assert.Equal(t, "fresh", p.Title)
		}
	}
	assert.Equal(t, 1, hits)
}

func TestStore_SortOrders(t *testing.T) {
	s := NewStore(tickingClock())

	s.Projects.Create(domain.ProjectInput{Title: ptr("old")})
	s.Projects.Create(domain.ProjectInput{Title: ptr("new")})
	projects := s.Projects.List()
	require.Len(t, projects, 2)
	assert.Equal(t, "new", projects[0].Title)

	s.Services.Create(domain.ServiceInput{Title: ptr("third"), Order: ptr(3)})
	s.Services.Create(domain.ServiceInput{Title: ptr("first"), Order: ptr(1)})
	services := s.Services.List()
	require.Len(t, services, 2)
	assert.Equal(t, "first", services[0].Title)

	s.Team.Create(domain.TeamMemberInput{Name: ptr("b"), Order: ptr(2)})
	s.Team.Create(domain.TeamMemberInput{Name: ptr("a"), Order: ptr(1)})
	assert.Equal(t, "a", s.Team.List()[0].Name)

	s.Testimonials.Create(domain.TestimonialInput{ClientName: ptr("older")})
	s.Testimonials.Create(domain.TestimonialInput{ClientName: ptr("newer")})
	assert.Equal(t, "newer", s.Testimonials.List()[0].ClientName)

	s.Contacts.Create(domain.ContactInput{Name: ptr("older")})
	s.Contacts.Create(domain.ContactInput{Name: ptr("newer")})
	assert.Equal(t, "newer", s.Contacts.List()[0].Name)
}

func TestStore_UpdateMissingReturnsNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Projects.Update("nope", domain.ProjectInput{Title: ptr("x")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = s.Services.Update("nope", domain.ServiceInput{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = s.Team.Update("nope", domain.TeamMemberInput{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = s.Testimonials.Update("nope", domain.TestimonialInput{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = s.Contacts.Update("nope", domain.ContactInput{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_UpdateKeepsIdentityAndUnsuppliedFields(t *testing.T) {
	s := NewStore()
	orig := s.Testimonials.Create(domain.TestimonialInput{
		ClientName: ptr("Jennifer"),
		Content:    ptr("great"),
		Rating:     ptr(5),
	})

	updated, err := s.Testimonials.Update(orig.ID, domain.TestimonialInput{Rating: ptr(4)})
	require.NoError(t, err)

	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, orig.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 4, updated.Rating)
	assert.Equal(t, "Jennifer", updated.ClientName)
	assert.Equal(t, "great", updated.Content)
}

func TestStore_DeleteTwice(t *testing.T) {
	s := NewStore()
	m := s.Team.Create(domain.TeamMemberInput{Name: ptr("Sarah")})

	assert.True(t, s.Team.Delete(m.ID))
	assert.False(t, s.Team.Delete(m.ID))

	_, err := s.Team.Get(m.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_Counts(t *testing.T) {
	s := NewStore()
	s.Services.Create(domain.ServiceInput{Title: ptr("a")})
	s.Contacts.Create(domain.ContactInput{Name: ptr("b")})
	s.Contacts.Create(domain.ContactInput{Name: ptr("c")})

	counts := s.Counts()
	assert.Equal(t, 0, counts[domain.KindProjects])
	assert.Equal(t, 1, counts[domain.KindServices])
	assert.Equal(t, 2, counts[domain.KindContacts])
}

func TestRepo_KindAndErrorMessage(t *testing.T) {
	s := NewStore()
	assert.Equal(t, domain.KindTeam, s.Team.Kind())

	_, err := s.Projects.Get("abc")
	require.Error(t, err)
	assert.Equal(t, `projects "abc": record not found`, err.Error())
}

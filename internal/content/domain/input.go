package domain

import (
	"slices"
	"strings"
)

// Inputs are the typed request bodies for create and update. Every field
// is a pointer so an update can tell "not supplied" from a zero value:
// Apply overwrites only the supplied fields.

type ProjectInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Image        *string   `json:"image"`
	Technologies *[]string `json:"technologies"`
	LiveURL      *string   `json:"liveUrl"`
	Featured     *bool     `json:"featured"`
}

func (in ProjectInput) Validate(partial bool) error {
	c := newChecker(partial)
	c.text("title", in.Title)
	c.text("description", in.Description)
	c.text("category", in.Category)
	c.text("image", in.Image)
	c.list("technologies", in.Technologies, false)
	c.link("liveUrl", in.LiveURL)
	return c.err()
}

func (in ProjectInput) Apply(p *Project) {
	setText(&p.Title, in.Title)
	setText(&p.Description, in.Description)
	setText(&p.Category, in.Category)
	setText(&p.Image, in.Image)
	setList(&p.Technologies, in.Technologies)
	setText(&p.LiveURL, in.LiveURL)
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
}

type ServiceInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Features    *[]string `json:"features"`
	Icon        *string   `json:"icon"`
	Order       *int      `json:"order"`
}

func (in ServiceInput) Validate(partial bool) error {
	c := newChecker(partial)
	c.text("title", in.Title)
	c.text("description", in.Description)
	c.list("features", in.Features, false)
	c.text("icon", in.Icon)
	c.between("order", in.Order, 0, maxOrder, false)
	return c.err()
}

func (in ServiceInput) Apply(s *Service) {
	setText(&s.Title, in.Title)
	setText(&s.Description, in.Description)
	setList(&s.Features, in.Features)
	setText(&s.Icon, in.Icon)
	if in.Order != nil {
		s.Order = *in.Order
	}
}

type TeamMemberInput struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Bio         *string `json:"bio"`
	Image       *string `json:"image"`
	LinkedinURL *string `json:"linkedinUrl"`
	TwitterURL  *string `json:"twitterUrl"`
	GithubURL   *string `json:"githubUrl"`
	Order       *int    `json:"order"`
}

func (in TeamMemberInput) Validate(partial bool) error {
	c := newChecker(partial)
	c.text("name", in.Name)
	c.text("role", in.Role)
	c.text("bio", in.Bio)
	c.text("image", in.Image)
	c.link("linkedinUrl", in.LinkedinURL)
	c.link("twitterUrl", in.TwitterURL)
	c.link("githubUrl", in.GithubURL)
	c.between("order", in.Order, 0, maxOrder, false)
	return c.err()
}

func (in TeamMemberInput) Apply(m *TeamMember) {
	setText(&m.Name, in.Name)
	setText(&m.Role, in.Role)
	setText(&m.Bio, in.Bio)
	setText(&m.Image, in.Image)
	setLink(&m.LinkedinURL, in.LinkedinURL)
	setLink(&m.TwitterURL, in.TwitterURL)
	setLink(&m.GithubURL, in.GithubURL)
	if in.Order != nil {
		m.Order = *in.Order
	}
}

type TestimonialInput struct {
	ClientName    *string `json:"clientName"`
	ClientRole    *string `json:"clientRole"`
	ClientCompany *string `json:"clientCompany"`
	Content       *string `json:"content"`
	Rating        *int    `json:"rating"`
	Image         *string `json:"image"`
}

func (in TestimonialInput) Validate(partial bool) error {
	c := newChecker(partial)
	c.text("clientName", in.ClientName)
	c.text("clientRole", in.ClientRole)
	c.text("clientCompany", in.ClientCompany)
	c.text("content", in.Content)
	c.between("rating", in.Rating, 1, 5, true)
	c.text("image", in.Image)
	return c.err()
}

func (in TestimonialInput) Apply(t *Testimonial) {
	setText(&t.ClientName, in.ClientName)
	setText(&t.ClientRole, in.ClientRole)
	setText(&t.ClientCompany, in.ClientCompany)
	setText(&t.Content, in.Content)
	if in.Rating != nil {
		t.Rating = *in.Rating
	}
	setText(&t.Image, in.Image)
}

type ContactInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

func (in ContactInput) Validate(partial bool) error {
	c := newChecker(partial)
	c.text("name", in.Name)
	c.email("email", in.Email)
	c.text("subject", in.Subject)
	c.text("message", in.Message)
	return c.err()
}

func (in ContactInput) Apply(s *ContactSubmission) {
	setText(&s.Name, in.Name)
	setText(&s.Email, in.Email)
	setText(&s.Subject, in.Subject)
	setText(&s.Message, in.Message)
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setList(dst *[]string, v *[]string) {
	if v != nil {
		*dst = slices.Clone(*v)
	}
	if *dst == nil {
		*dst = []string{}
	}
}

// setLink stores a trimmed link; an empty string clears it.
func setLink(dst **string, v *string) {
	if v == nil {
		return
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		*dst = nil
		return
	}
	*dst = &s
}

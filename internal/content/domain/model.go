package domain

import "time"

// Kind names a content collection. The value doubles as the URL segment
// under /api and as the event channel suffix.
type Kind string

const (
	KindProjects     Kind = "projects"
	KindServices     Kind = "services"
	KindTeam         Kind = "team"
	KindTestimonials Kind = "testimonials"
	KindContacts     Kind = "contacts"
)

// Project is a portfolio entry. Listed newest first.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	LiveURL      string    `json:"liveUrl"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Service is an offered service. Listed by ascending Order.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Icon        string    `json:"icon"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TeamMember is listed by ascending Order. Social links are optional and
// serialize as null when unset.
type TeamMember struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Bio         string    `json:"bio"`
	Image       string    `json:"image"`
	LinkedinURL *string   `json:"linkedinUrl"`
	TwitterURL  *string   `json:"twitterUrl"`
	GithubURL   *string   `json:"githubUrl"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Testimonial is a client quote with a 1..5 rating. Listed newest first.
type Testimonial struct {
	ID            string    `json:"id"`
	ClientName    string    `json:"clientName"`
	ClientRole    string    `json:"clientRole"`
	ClientCompany string    `json:"clientCompany"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
	Image         string    `json:"image"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ContactSubmission is created by the public contact form and never updated.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Package seed holds the built-in showcase dataset loaded at startup.
package seed

import (
	"fmt"

	"github.com/nexus-blend/showcase-api/internal/content/repository"
)

type validator interface {
	Validate(partial bool) error
}

// Load inserts the built-in dataset into store in a fixed order so that
// newest-first listings come out the same on every start.
func Load(store *repository.Store) error {
	if err := check("projects", projects); err != nil {
		return err
	}
	if err := check("services", services); err != nil {
		return err
	}
	if err := check("team", team); err != nil {
		return err
	}
	if err := check("testimonials", testimonials); err != nil {
		return err
	}

	for _, in := range projects {
		store.Projects.Create(in)
	}
	for _, in := range services {
		store.Services.Create(in)
	}
	for _, in := range team {
		store.Team.Create(in)
	}
	for _, in := range testimonials {
		store.Testimonials.Create(in)
	}
	return nil
}

func check[In validator](kind string, items []In) error {
	for i, in := range items {
		if err := in.Validate(false); err != nil {
			return fmt.Errorf("seed %s[%d]: %w", kind, i, err)
		}
	}
	return nil
}

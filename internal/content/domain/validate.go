package domain

import (
	"net/mail"
	"net/url"
	"strings"
)

// checker accumulates field errors for a single request body. In partial
// mode (updates) absent fields are skipped; supplied ones are still checked.
type checker struct {
	partial bool
	fields  map[string]string
}

func newChecker(partial bool) *checker {
	return &checker{partial: partial, fields: map[string]string{}}
}

func (c *checker) fail(field, reason string) {
	if _, exists := c.fields[field]; !exists {
		c.fields[field] = reason
	}
}

func (c *checker) missing(field string, present bool) bool {
	if present {
		return false
	}
	if !c.partial {
		c.fail(field, "is required")
	}
	return true
}

func (c *checker) text(field string, v *string) {
	if c.missing(field, v != nil) {
		return
	}
	if strings.TrimSpace(*v) == "" {
		c.fail(field, "must not be blank")
	}
}

func (c *checker) list(field string, v *[]string, required bool) {
	if v == nil {
		if required {
			c.missing(field, false)
		}
		return
	}
	for _, s := range *v {
		if strings.TrimSpace(s) == "" {
			c.fail(field, "must not contain blank entries")
			return
		}
	}
}

func (c *checker) link(field string, v *string) {
	if v == nil || *v == "" {
		return
	}
	u, err := url.Parse(*v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		c.fail(field, "must be an absolute http(s) URL")
	}
}

func (c *checker) between(field string, v *int, lo, hi int, required bool) {
	if v == nil {
		if required {
			c.missing(field, false)
		}
		return
	}
	if *v < lo || *v > hi {
		c.fail(field, "is out of range")
	}
}

func (c *checker) email(field string, v *string) {
	if c.missing(field, v != nil) {
		return
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(*v))
	if err != nil || addr.Name != "" {
		c.fail(field, "must be a valid email address")
	}
}

func (c *checker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

const maxOrder = 1 << 20

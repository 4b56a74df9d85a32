package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// queryParser reads typed query parameters, remembering the first malformed
// value so a handler can collect all parameters and reject the request in
// one place. Numeric parameters are strict: a value that does not parse is
// a client error, not an absent filter. Timestamps stay lenient; a
// malformed date behaves like an absent one.
type queryParser struct {
	c   *gin.Context
	err error
}

func query(c *gin.Context) *queryParser {
	return &queryParser{c: c}
}

// Err returns the first parse failure, or nil when every read value was
// well-formed.
func (p *queryParser) Err() error {
	return p.err
}

func (p *queryParser) fail(name, raw string) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid value %q for parameter %s", raw, name)
	}
}

// intDefault reads an integer parameter, substituting def when absent.
func (p *queryParser) intDefault(name string, def int) int {
	raw := p.c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, raw)
		return def
	}
	return n
}

// intPtr reads an optional integer parameter; absent stays nil.
func (p *queryParser) intPtr(name string) *int {
	raw := p.c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, raw)
		return nil
	}
	return &n
}

// floatPtr reads an optional float parameter; absent stays nil.
func (p *queryParser) floatPtr(name string) *float64 {
	raw := p.c.Query(name)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(name, raw)
		return nil
	}
	return &f
}

// instant reads an optional RFC 3339 timestamp parameter. Malformed values
// are dropped, never failed; date filters are best-effort.
func (p *queryParser) instant(name string) *time.Time {
	return parseInstant(p.c.Query(name))
}

// page reads the zero-based pagination parameters with their defaults.
func (p *queryParser) page() (page, size int) {
	return p.intDefault("page", 0), p.intDefault("size", 10)
}

// parseInstant parses an RFC 3339 timestamp. A malformed value behaves
// exactly like an absent one.
func parseInstant(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}

// Package mock provides a scriptable protocol implementation for testing.
package mock

import (
	"context"
	"sync"
)

// Protocol is a Protocol implementation backed by canned responses. It
// answers each requested target/command pair from Responses, mirroring the
// request shape the way real firmware does, and records every request it
// sees for assertions.
type Protocol struct {
	// Responses holds canned results keyed by target then command.
	// Requested commands without an entry answer {"err_code": 0}.
	Responses map[string]map[string]any

	// Err, when set, fails every Query with this error.
	Err error

	// Handler, when set, overrides the canned-response behavior entirely.
	Handler func(request map[string]any) (map[string]any, error)

	mu      sync.Mutex
	queries []map[string]any
}

// Query implements protocol.Protocol.
func (p *Protocol) Query(_ context.Context, request map[string]any) (map[string]any, error) {
	p.mu.Lock()
	p.queries = append(p.queries, request)
	p.mu.Unlock()

	if p.Handler != nil {
		return p.Handler(request)
	}
	if p.Err != nil {
		return nil, p.Err
	}

	response := make(map[string]any, len(request))
	for target, commands := range request {
		cmdMap, ok := commands.(map[string]any)
		if !ok {
			continue
		}
		slice := make(map[string]any, len(cmdMap))
		for cmd := range cmdMap {
			if canned, ok := p.Responses[target][cmd]; ok {
				slice[cmd] = canned
			} else {
				slice[cmd] = map[string]any{"err_code": 0}
			}
		}
		response[target] = slice
	}
	return response, nil
}

// Queries returns a copy of every request seen so far.
func (p *Protocol) Queries() []map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]map[string]any, len(p.queries))
	copy(out, p.queries)
	return out
}

// LastQuery returns the most recent request, or nil if none were made.
func (p *Protocol) LastQuery() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.queries) == 0 {
		return nil
	}
	return p.queries[len(p.queries)-1]
}

// CallCount returns the number of queries performed.
func (p *Protocol) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queries)
}

// Reset clears the recorded queries.
func (p *Protocol) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queries = nil
}

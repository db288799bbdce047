package port

import "imgview/internal/core/domain"

type ActionRegistry interface {
	// Register adds a new action to the registry.
	Register(action domain.Action)
	// Get retrieves a registered Action by its name or returns an error if not found.
	Get(name string) (domain.Action, error)
	// ListActions returns the names of all registered actions.
	ListActions() []string
}

package domain

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

type Action interface {
	// Apply computes the preview size that results from performing the action on the current one.
	Apply(current PreviewSize, args string) (PreviewSize, error)
	// GetName returns the identifier the action is registered under.
	GetName() string
}

type ActionRegistry struct {
	actions map[string]Action
	order   []string
}

func (r *ActionRegistry) Register(action Action) {
	if r.actions == nil {
		r.actions = make(map[string]Action)
	}

	log.Debug().Str("action", action.GetName()).Msg("adding action to registry")

	if _, ok := r.actions[action.GetName()]; !ok {
		r.order = append(r.order, action.GetName())
	}
	r.actions[action.GetName()] = action
}

func (r *ActionRegistry) Get(name string) (Action, error) {
	if r.actions == nil {
		return nil, errors.New("can't fetch actions, registry not initialized")
	}

	action, ok := r.actions[name]
	if !ok {
		return nil, errors.New("action not found")
	}

	return action, nil
}

// ListActions returns the registered action names in registration order.
func (r *ActionRegistry) ListActions() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

func ParseActionArgs(input string) string {
	fields := strings.Fields(input)
	if len(fields) < 2 {
		return ""
	}

	return strings.Join(fields[1:], " ")
}

func ParseAction(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

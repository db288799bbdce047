package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockAction struct {
	name string
}

func (m *MockAction) Apply(current PreviewSize, _ string) (PreviewSize, error) {
	return current, nil
}

func (m *MockAction) GetName() string {
	return m.name
}

func TestRegister(t *testing.T) {
	r := &ActionRegistry{}
	ma := &MockAction{name: "zoom_in"}

	r.Register(ma)
	assert.Equal(t, 1, len(r.actions))
}

func TestRegisterTwiceReplaces(t *testing.T) {
	r := &ActionRegistry{}

	r.Register(&MockAction{name: "zoom_in"})
	r.Register(&MockAction{name: "zoom_in"})

	assert.Equal(t, 1, len(r.actions))
	assert.Equal(t, []string{"zoom_in"}, r.ListActions())
}

func TestGetNotRegistered(t *testing.T) {
	r := &ActionRegistry{}

	_, err := r.Get("zoom_in")
	assert.EqualError(t, err, "can't fetch actions, registry not initialized")
}

func TestGetActionNotFound(t *testing.T) {
	r := &ActionRegistry{}
	r.Register(&MockAction{name: "zoom_in"})

	_, err := r.Get("zoom_sideways")
	assert.EqualError(t, err, "action not found")
}

func TestGetActionFound(t *testing.T) {
	r := &ActionRegistry{}
	r.Register(&MockAction{name: "zoom_in"})

	action, err := r.Get("zoom_in")
	require.NoError(t, err)
	require.NotNil(t, action)

	assert.Equal(t, "zoom_in", action.GetName())
}

func TestListActions(t *testing.T) {
	r := &ActionRegistry{}
	r.Register(&MockAction{name: "zoom_in"})
	r.Register(&MockAction{name: "zoom_out"})

	list := r.ListActions()

	assert.Equal(t, []string{"zoom_in", "zoom_out"}, list)
}

func TestParseActionArgs(t *testing.T) {
	type TestCase struct {
		description string
		input       string
		want        string
	}

	testCases := []TestCase{
		{
			description: "should discard first word",
			input:       "set preview_50",
			want:        "preview_50",
		},
		{
			description: "should only discard first word",
			input:       "set preview_50 now",
			want:        "preview_50 now",
		},
		{
			description: "empty on no args",
			input:       "zoom_in",
			want:        "",
		},
		{
			description: "empty on no input",
			input:       "",
			want:        "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got := ParseActionArgs(testCase.input)

			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestParseAction(t *testing.T) {
	type TestCase struct {
		description string
		input       string
		want        string
	}

	testCases := []TestCase{
		{
			description: "should return first word",
			input:       "zoom_in",
			want:        "zoom_in",
		},
		{
			description: "should discard following word",
			input:       "set preview_50",
			want:        "set",
		},
		{
			description: "should ignore surrounding whitespace",
			input:       "  fit ",
			want:        "fit",
		},
		{
			description: "empty on no input",
			input:       "",
			want:        "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got := ParseAction(testCase.input)

			assert.Equal(t, testCase.want, got)
		})
	}
}

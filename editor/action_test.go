package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leprekus/quickwrite/config"
	"github.com/Leprekus/quickwrite/transform"
)

func TestDefaultRegistryOrder(t *testing.T) {
	reg := DefaultRegistry(config.Default())

	var ids []string
	seen := map[string]bool{}
	for _, a := range reg.Actions() {
		ids = append(ids, a.ID)
		// no duplicate ids, every entry fully populated
		assert.False(t, seen[a.ID])
		seen[a.ID] = true
		assert.NotEmpty(t, a.Label)
		assert.NotEmpty(t, a.Hint)
		assert.NotNil(t, a.Transform)
	}
	assert.Equal(t, []string{"bold", "italic", "heading", "quote", "code", "todo", "divider"}, ids)
}

func TestRegistryKeepsFirstDuplicate(t *testing.T) {
	first := Action{ID: "x", Label: "First", Transform: transform.NewDivider()}
	second := Action{ID: "x", Label: "Second", Transform: transform.NewDivider()}
	reg := NewRegistry(first, second)

	a, ok := reg.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "First", a.Label)
	assert.Len(t, reg.Actions(), 1)
}

func TestInvoke(t *testing.T) {
	reg := DefaultRegistry(config.Default())

	res, err := reg.Invoke("bold", transform.Request{Text: "word", From: 0, To: 4})
	require.NoError(t, err)
	assert.Equal(t, "**word**", res.Text)
	assert.Equal(t, "word", res.Text[res.From:res.To])
}

func TestInvokeUnknownAction(t *testing.T) {
	reg := DefaultRegistry(config.Default())

	_, err := reg.Invoke("underline", transform.Request{Text: "word"})
	assert.True(t, errors.Is(err, ErrActionNotFound))
}

func TestDefaultRegistryUsesConfiguredPlaceholders(t *testing.T) {
	cfg := config.Default()
	cfg.Placeholders.Bold = "emphasized"
	reg := DefaultRegistry(cfg)

	res, err := reg.Invoke("bold", transform.Request{})
	require.NoError(t, err)
	assert.Equal(t, "**emphasized**", res.Text)
}

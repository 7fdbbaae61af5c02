package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Registry(t *testing.T) {
	assert := assert.New(t)

	r := NewRegistry()

	echo := func(req Request) (string, error) { return "ok", nil }

	assert.NoError(r.Register("look", "look around", echo))
	assert.Error(r.Register("look", "again", echo), "double registration must fail")
	assert.Error(r.Register("broken", "no handler", nil))

	h, ok := r.Lookup("look")
	assert.True(ok)
	out, err := h(Request{})
	assert.NoError(err)
	assert.Equal("ok", out)

	_, ok = r.Lookup("dance")
	assert.False(ok)

	_, ok = r.Lookup("LOOK")
	assert.True(ok, "lookup must be case-insensitive")
}

func Test_Registry_aliases(t *testing.T) {
	assert := assert.New(t)

	r := NewRegistry()
	echo := func(req Request) (string, error) { return "ok", nil }

	assert.NoError(r.Register("act", "perform an emote", echo))
	assert.NoError(r.RegisterAlias("emote", "act"))

	assert.Error(r.RegisterAlias("dance", "missing"), "alias target must exist")
	assert.Error(r.RegisterAlias("emote", "act"), "alias may not be registered twice")

	_, ok := r.Lookup("emote")
	assert.True(ok)
}

func Test_Registry_Help(t *testing.T) {
	assert := assert.New(t)

	r := NewRegistry()
	echo := func(req Request) (string, error) { return "ok", nil }

	assert.NoError(r.Register("who", "list who is online", echo))
	assert.NoError(r.Register("look", "look around", echo))
	assert.NoError(r.RegisterAlias("l", "look"))

	help := r.Help()
	if !assert.Len(help, 2, "aliases are not listed") {
		return
	}
	assert.Equal("look", help[0].Verb, "entries are sorted by verb")
	assert.Equal("who", help[1].Verb)
	assert.Equal("look around", help[0].Text)
}

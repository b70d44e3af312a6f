package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCommand struct{ name string }

func (s stubCommand) Name() string        { return s.name }
func (s stubCommand) Description() string { return "does " + s.name }
func (s stubCommand) Run([]string) error  { return nil }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(stubCommand{"wait-for-db"})
	r.Register(stubCommand{"migrate"})

	cmd, ok := r.Get("migrate")
	assert.True(t, ok)
	assert.Equal(t, "migrate", cmd.Name())

	_, ok = r.Get("deploy")
	assert.False(t, ok)

	names := []string{}
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"migrate", "wait-for-db"}, names)
}

func TestRegistry_PrintHelp(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry()
	r.out = &buf
	r.Register(stubCommand{"migrate"})
	r.Register(stubCommand{"check-db"})

	r.PrintHelp()

	out := buf.String()
	assert.Contains(t, out, "Usage: devtool")
	assert.Contains(t, out, "  check-db  does check-db\n")
	assert.Contains(t, out, "  migrate   does migrate\n")
}

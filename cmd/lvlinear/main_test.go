package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinear/capacity"
	"github.com/katalvlaran/lvlinear/vector"
)

func TestReport_Geometric(t *testing.T) {
	geo, err := capacity.NewGeometric(2)
	require.NoError(t, err)

	var out bytes.Buffer
	var events []vector.ResizeEvent
	st := report(&out, geo, 5, false, func(e vector.ResizeEvent) { events = append(events, e) })

	assert.Equal(t, 4, st.Reallocations) // 1, 2, 4, 8
	assert.Len(t, events, 4)
	assert.Contains(t, out.String(), "policy geometric(ratio=2)")
	assert.Contains(t, out.String(), "pushed 5: capacity 8")
}

func TestReport_HysteresisPop(t *testing.T) {
	hyst, err := capacity.NewHysteresis(2, 2, 4, 4)
	require.NoError(t, err)

	var out bytes.Buffer
	st := report(&out, hyst, 2000, true, nil)

	assert.Contains(t, out.String(), "pushed 2,000: capacity 2,048")
	assert.Contains(t, out.String(), "popped 2,000: capacity 4")
	assert.Contains(t, out.String(), "shrink")
	assert.Positive(t, st.Relocated)
}

// TestCommands runs the cobra tree end to end on an in-memory filesystem.
func TestCommands(t *testing.T) {
	app.fs = afero.NewMemMapFs()
	t.Cleanup(func() { app.fs = nil })
	doc := "container: queue.circular\ncapacity: 2\nsteps:\n" +
		"  - {op: enqueue, args: [1]}\n" +
		"  - {op: enqueue, args: [2]}\n" +
		"  - {op: enqueue, args: [3]}\n" +
		"  - {op: dequeue}\n"
	require.NoError(t, afero.WriteFile(app.fs, "/q.yaml", []byte(doc), 0o644))

	execute := func(args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	out, err := execute("run", "/q.yaml", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "error: queue: Enqueue: core: container is full")
	assert.True(t, strings.HasSuffix(out, "4 steps, 1 failed\n"))

	_, err = execute("run", "/q.yaml", "--strict")
	assert.ErrorContains(t, err, "1 failing steps")
	flagStrict = false

	out, err = execute("capacity", "--policy", "fixed", "--step", "4", "--n", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "policy fixed(step=4)")
	assert.Contains(t, out, "pushed 10: capacity 12")

	_, err = execute("capacity", "--policy", "hysteresis", "--ratio", "4", "--threshold", "2")
	assert.ErrorIs(t, err, capacity.ErrThrash)

	out, err = execute("version")
	require.NoError(t, err)
	assert.Equal(t, "lvlinear "+version+"\n", out)
}

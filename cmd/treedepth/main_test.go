package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerSeeds_SequentialFromBase(t *testing.T) {
	seeds := workerSeeds(10, 4)
	assert.Equal(t, []int64{10, 11, 12, 13}, seeds)
}

func TestNewRootCmd_FlagsRegistered(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"input", "seed", "status", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
}

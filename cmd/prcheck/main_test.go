package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmdRequiresExactlyTwoArgs(t *testing.T) {
	cmd := newRootCmd()

	assert.Error(t, cmd.Args(cmd, []string{"only-one.cnf"}))
	assert.Error(t, cmd.Args(cmd, []string{"a.cnf", "b.lpr", "extra"}))
	assert.NoError(t, cmd.Args(cmd, []string{"a.cnf", "b.lpr"}))
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrolens/fdcresolve/internal/domain"
)

func TestRootCmd_EmptyInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(""))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out.String())
}

func TestRootCmd_EmptyArray(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("[]"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out.String())
}

func TestRootCmd_MalformedInputFails(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(`{"not": "a list"}`))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidBatchInput)
	assert.Empty(t, out.String(), "no output for a malformed batch")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("[]"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	err := cmd.Execute()

	assert.Error(t, err)
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestRunSingleQuery(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"-q", "rahul"}, strings.NewReader(""), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), `3 result(s) for "rahul"`)
	assert.Contains(t, out.String(), "Rahul Sharma")
}

func TestRunSelectNavigates(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"-q", "rahul", "-select", "user:user-1"}, strings.NewReader(""), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "→ navigate to /user/user-1")
}

func TestRunUnknownSelectionFails(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"-q", "rahul", "-select", "user:nobody"}, strings.NewReader(""), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Failed: user nobody is not among the results")
}

func TestRunInteractive(t *testing.T) {
	var out bytes.Buffer

	code := run(nil, strings.NewReader("rahul\n:1\n\n"), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Rahul Sharma")
	assert.Contains(t, out.String(), "→ navigate to /user/user-1")
	assert.Contains(t, out.String(), "cleared")
}

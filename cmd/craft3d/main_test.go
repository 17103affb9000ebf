package main

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestShaderErrorText(t *testing.T) {
	assert.Equal(t, "vertex", shaderKind(gl.VERTEX_SHADER))
	assert.Equal(t, "fragment", shaderKind(gl.FRAGMENT_SHADER))

	assert.Equal(t, "0:3(1): error: syntax error", trimInfoLog("0:3(1): error: syntax error\n\x00\x00"))
	assert.Equal(t, "", trimInfoLog("\x00"))
}

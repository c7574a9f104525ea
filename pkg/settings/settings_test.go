package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetServer(t *testing.T) {
	defer func(s string) { Server = s }(Server)

	Server = " https://nexus.example.com/ "
	assert.Equal(t, "https://nexus.example.com", GetServer())

	Server = ""
	assert.Empty(t, GetServer())
}

package interaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOpenCommand(t *testing.T) {
	assert.Equal(t, "open", DefaultOpenCommand("darwin"))
	assert.Equal(t, "xdg-open", DefaultOpenCommand("linux"))
	assert.Equal(t, "rundll32 url.dll,FileProtocolHandler", DefaultOpenCommand("windows"))
}

func TestCommandOpener_Command(t *testing.T) {
	opener := NewCommandOpener("xdg-open")
	assert.Equal(t, "xdg-open 'https://example/commit/1'", opener.Command("https://example/commit/1"))
	assert.Equal(t, `xdg-open 'https://example/?q='\''x'\''&a=$HOME'`, opener.Command("https://example/?q='x'&a=$HOME"))
}

func TestCommandOpener_EmptyURL(t *testing.T) {
	opener := NewCommandOpener("xdg-open")
	assert.NotNil(t, opener.Open(context.Background(), ""))
	assert.Nil(t, opener.Close())
}

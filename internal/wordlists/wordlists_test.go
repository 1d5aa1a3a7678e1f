package wordlists

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedListsLoad(t *testing.T) {
	assert.NotEmpty(t, NullPhrases())
	assert.NotEmpty(t, GivenNames())
	assert.NotEmpty(t, Surnames())
	assert.NotEmpty(t, Currencies())
	assert.NotEmpty(t, BackwardMarkers())
	assert.NotEmpty(t, ForwardMarkers())
}

func TestListContents(t *testing.T) {
	assert.Contains(t, NullPhrases(), "NO SE CUENTA")
	assert.Contains(t, NullPhrases(), "N/A")
	assert.Contains(t, GivenNames(), "JUAN")
	assert.Contains(t, Surnames(), "LOPEZ")
	assert.Contains(t, Currencies(), "MXN")
	assert.Contains(t, Currencies(), "USD")
	assert.Contains(t, BackwardMarkers(), "mencionado anteriormente")
	assert.Contains(t, ForwardMarkers(), "siguiente cuenta")
}

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsChain(t *testing.T) {
	err := Wrap(errSentinel, "fetch sleep")

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "fetch sleep: sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

func TestJoin(t *testing.T) {
	other := Errorf("status %d", 502)
	err := Join(errSentinel, other)

	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, other))
}

package logfields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintShortened(t *testing.T) {
	a := Fingerprint("0123456789abcdef0123")
	assert.Equal(t, KeyFingerprint, a.Key)
	assert.Equal(t, "0123456789ab", a.Value.String())

	assert.Equal(t, "abc", Fingerprint("abc").Value.String())
}

func TestError(t *testing.T) {
	assert.Equal(t, "", Error(nil).Value.String())
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}

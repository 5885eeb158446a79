package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAttachesComponentField(t *testing.T) {
	log := New(Config{Component: "sampler"})
	assert.NotNil(t, log)

	var buf bytes.Buffer
	captured := log.Output(&buf)
	captured.Info().Msg("probe")
	assert.Contains(t, buf.String(), `"component":"sampler"`)
}

func TestRotationConfigValidateRejectsZeroSize(t *testing.T) {
	err := RotationConfig{MaxSizeMB: 0}.Validate()
	assert.Error(t, err)
}

func TestRotationConfigOrDefaultFillsZeroValue(t *testing.T) {
	got := RotationConfig{}.orDefault()
	assert.Equal(t, DefaultRotationConfig(), got)
}

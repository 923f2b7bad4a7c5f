package fetch

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evu/sat-stac/internal/sigv4"
)

func TestSettingsDefaults(t *testing.T) {
	settings, err := NewSettings()
	assert.NoError(t, err)
	assert.Equal(t, sigv4.DefaultRegion, settings.Region)
	assert.Equal(t, Threads, settings.Threads)
	assert.NotNil(t, settings.Forwarder)
	assert.NotNil(t, settings.Retry)
}

func TestSettingsOverrides(t *testing.T) {
	settings, err := NewSettings(
		WithRegion("us-west-2"),
		WithThreads(8),
		WithCredentials(sigv4.Credentials{Account: "AKIDEXAMPLE", Secret: "testsecret"}),
	)
	assert.NoError(t, err)
	assert.Equal(t, "us-west-2", settings.Region)
	assert.Equal(t, 8, settings.Threads)
	assert.True(t, settings.Credentials.Complete())
}

func TestSettingsRejectsInvalidThreads(t *testing.T) {
	_, err := NewSettings(WithThreads(-1))
	assert.Error(t, err)
}

func TestSettingsFromFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "settings")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "config.json")
	err = ioutil.WriteFile(file, []byte(`{"Region": "ap-southeast-2", "Threads": 6}`), 0644)
	assert.NoError(t, err)

	settings, err := NewSettings(FromFile(file))
	assert.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", settings.Region)
	assert.Equal(t, 6, settings.Threads)
}

func TestSettingsFromMissingFile(t *testing.T) {
	_, err := NewSettings(FromFile("/nonexistent/config.json"))
	assert.Error(t, err)
}

package sigv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEndpoint(t *testing.T) {
	endpoint, err := ParseEndpoint("https://examplebucket.s3.amazonaws.com/test.txt", "eu-central-1")
	assert.NoError(t, err)
	assert.Equal(t, "examplebucket", endpoint.Bucket)
	assert.Equal(t, "test.txt", endpoint.Key)
	assert.Equal(t, "examplebucket.s3.amazonaws.com", endpoint.Host)
	assert.Equal(t, "eu-central-1", endpoint.Region)
	assert.Equal(t, "https://examplebucket.s3.amazonaws.com/test.txt", endpoint.URL())
}

func TestParseEndpointKeepsKeySegments(t *testing.T) {
	endpoint, err := ParseEndpoint("https://landsat-pds.s3.amazonaws.com/c1/L8/139/045/scene/B1.TIF", "")
	assert.NoError(t, err)
	assert.Equal(t, "landsat-pds", endpoint.Bucket)
	assert.Equal(t, "c1/L8/139/045/scene/B1.TIF", endpoint.Key)
	assert.Equal(t, "landsat-pds.s3.amazonaws.com", endpoint.Host)
	assert.Equal(t, DefaultRegion, endpoint.Region)
}

func TestParseEndpointRejectsForeignHosts(t *testing.T) {
	_, err := ParseEndpoint("https://example.com/test.txt", "eu-central-1")
	assert.Error(t, err)

	_, err = ParseEndpoint("http://examplebucket.s3.amazonaws.com/test.txt", "eu-central-1")
	assert.Error(t, err)
}

func TestParseEndpointRequiresKey(t *testing.T) {
	_, err := ParseEndpoint("https://examplebucket.s3.amazonaws.com/", "eu-central-1")
	assert.Error(t, err)

	_, err = ParseEndpoint("https://examplebucket.s3.amazonaws.com", "eu-central-1")
	assert.Error(t, err)
}

package sigv4

import (
	"fmt"
	"strings"
)

// Endpoint addresses a single object on the storage service.
type Endpoint struct {
	Bucket string
	Key    string
	Host   string
	Region string
}

// ParseEndpoint derives the endpoint from an object URL. The host is always
// the global endpoint for the bucket; the region only enters the signing
// scope. Object keys are taken verbatim and assumed already encoded.
func ParseEndpoint(rawURL, region string) (Endpoint, error) {
	if !strings.HasPrefix(rawURL, "https://") {
		return Endpoint{}, fmt.Errorf("unsupported url '%s': https is required", rawURL)
	}

	parts := strings.Split(strings.TrimPrefix(rawURL, "https://"), "/")
	if !strings.HasSuffix(parts[0], DomainSuffix) {
		return Endpoint{}, fmt.Errorf("host '%s' is not a storage endpoint", parts[0])
	}

	bucket := strings.TrimSuffix(parts[0], DomainSuffix)
	if len(bucket) == 0 {
		return Endpoint{}, fmt.Errorf("no bucket in '%s'", rawURL)
	}

	key := strings.Join(parts[1:], "/")
	if len(key) == 0 {
		return Endpoint{}, fmt.Errorf("no object key in '%s'", rawURL)
	}

	if len(region) == 0 {
		region = DefaultRegion
	}

	return Endpoint{
		Bucket: bucket,
		Key:    key,
		Host:   bucket + DomainSuffix,
		Region: region,
	}, nil
}

// URL renders the fully qualified request URL.
func (e Endpoint) URL() string {
	return "https://" + e.Host + "/" + e.Key
}

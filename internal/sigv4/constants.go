package sigv4

type commonHeaders struct {
	authorization string
	date          string
	contentHash   string
	requestPayer  string
}

var header = commonHeaders{
	authorization: "Authorization",
	date:          "x-amz-date",
	contentHash:   "x-amz-content-sha256",
	requestPayer:  "x-amz-request-payer",
}

const (
	// UnsignedPayload indicates that the request payload body is unsigned.
	UnsignedPayload = "UNSIGNED-PAYLOAD"

	// TimeFormat is the time format to be used in the x-amz-date header.
	TimeFormat = "20060102T150405Z"

	// DateFormat is the shorten time format used in the credential scope.
	DateFormat = "20060102"

	// SignAlgorithm represents the default hash algorithm.
	SignAlgorithm = "AWS4-HMAC-SHA256"

	// DomainSuffix identifies hosts served by the storage service.
	DomainSuffix = ".s3.amazonaws.com"

	// DefaultRegion is the signing scope region used when none is configured.
	DefaultRegion = "eu-central-1"

	service = "s3"

	requestType = "aws4_request"
)

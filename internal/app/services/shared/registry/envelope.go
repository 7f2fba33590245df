package registry

import (
	"audicare-service/internal/app/contracts"
	"audicare-service/internal/pkg/constvars"
	"audicare-service/internal/pkg/exceptions"
	"bytes"
	"encoding/base64"

	"github.com/goccy/go-json"
)

type base64EnvelopeDecoder struct{}

// NewEnvelopeDecoder unwraps registry responses that arrive as
// {"envelope": "<base64 of the JSON payload>"}. Responses without the
// envelope key pass through untouched.
func NewEnvelopeDecoder() contracts.EnvelopeDecoder {
	return &base64EnvelopeDecoder{}
}

func (d *base64EnvelopeDecoder) Decode(body []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return body, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}

	raw, ok := wrapper[constvars.RegistryEnvelopeKey]
	if !ok {
		return body, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, exceptions.ErrDecodeEnvelope(err)
	}
	return decoded, nil
}

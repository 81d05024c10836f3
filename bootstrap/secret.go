// Package bootstrap extracts short-lived credentials from HashiCorp Vault
// responses during service provisioning. It performs no I/O of its own: the
// transport that obtained the payload is an external collaborator, and this
// package only decodes and validates what it was handed.
package bootstrap

import "encoding/json"

// SecretResponse is the envelope Vault wraps around secret-issuance payloads.
// Data stays raw so a response whose data field is absent or malformed can
// still be inspected without failing the decode step.
type SecretResponse struct {
	RequestID     string          `json:"request_id,omitempty"`
	LeaseID       string          `json:"lease_id,omitempty"`
	LeaseDuration int             `json:"lease_duration,omitempty"`
	Renewable     bool            `json:"renewable,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
	Warnings      []string        `json:"warnings,omitempty"`
}

// ParseSecretResponse decodes a raw Vault payload. Payloads that are not
// syntactically valid JSON objects produce a DecodeError carrying the parse
// failure as its cause.
func ParseSecretResponse(payload string) (*SecretResponse, error) {
	var response SecretResponse
	if err := json.Unmarshal([]byte(payload), &response); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	return &response, nil
}

// DataMap returns the data section as a mapping. Absent data, or data that is
// not a JSON object, reads as an empty mapping.
func (r *SecretResponse) DataMap() map[string]any {
	if r == nil || len(r.Data) == 0 {
		return map[string]any{}
	}
	var data map[string]any
	if err := json.Unmarshal(r.Data, &data); err != nil || data == nil {
		return map[string]any{}
	}
	return data
}

// SecretID resolves data.secret_id. The identifier must be present and
// non-empty; null, false, zero, and non-string values are all treated as
// missing since a credential identifier is textual by contract.
func (r *SecretResponse) SecretID() (string, error) {
	value, ok := r.DataMap()["secret_id"]
	if !ok {
		return "", ErrSecretIDMissing
	}
	secretID, ok := value.(string)
	if !ok || secretID == "" {
		return "", ErrSecretIDMissing
	}
	return secretID, nil
}

// ExtractSecretID pulls a secret-id out of a raw Vault response payload.
// Extraction either fully succeeds with a non-empty identifier or fails with
// one of the two bootstrap errors; there is no partial result and nothing is
// retried.
func ExtractSecretID(payload string) (string, error) {
	response, err := ParseSecretResponse(payload)
	if err != nil {
		return "", err
	}
	return response.SecretID()
}

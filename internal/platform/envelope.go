package platform

import (
	"bytes"
	"encoding/json"
)

// envelope is the wrapper most platform endpoints use for payload plus
// metadata: { data: T, status: number, message?: string }.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
}

// unwrapEnvelope strips the {data,status,message} wrapper when present. A few
// endpoints respond with the payload bare; those pass through untouched.
func unwrapEnvelope(payload []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return payload
	}
	var env envelope
	if err := jsonAPI.Unmarshal(payload, &env); err != nil {
		return payload
	}
	if len(env.Data) == 0 {
		return payload
	}
	return env.Data
}

// unwrapKeyed peels a single duck-typed wrapper object off the payload, e.g.
// {"listener": {...}} or {"listeners": [...]}. The first matching key wins;
// payloads that are not objects or carry none of the keys pass through.
func unwrapKeyed(payload json.RawMessage, keys ...string) json.RawMessage {
	if len(keys) == 0 {
		return payload
	}
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return payload
	}
	var fields map[string]json.RawMessage
	if err := jsonAPI.Unmarshal(payload, &fields); err != nil {
		return payload
	}
	for _, key := range keys {
		if nested, ok := fields[key]; ok {
			return nested
		}
	}
	return payload
}

// serverMessage extracts the message field from an error response body, if
// the body is an envelope at all.
func serverMessage(payload []byte) string {
	var env envelope
	if err := jsonAPI.Unmarshal(payload, &env); err != nil {
		return ""
	}
	return env.Message
}

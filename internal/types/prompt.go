package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ------------------------------
// Prompt API shapes
// ------------------------------

// Field names of the GET /api/prompt response that the client reads.
const (
	FieldAgentName  = "agent_name"
	FieldPromptText = "prompt_text"
	FieldPromptID   = "prompt_id"
	FieldUpdatedAt  = "updated_at"
)

// PromptDetails is the active prompt record returned for an agent.
//
// Only the fields below are typed; every other key of the response object is
// kept verbatim and re-emitted by MarshalJSON.
type PromptDetails struct {
	AgentName  string
	PromptText string
	PromptID   string
	UpdatedAt  string

	raw map[string]json.RawMessage
}

// UnmarshalJSON decodes a response object. prompt_text must be a string or
// null. The other typed fields are filled only when they hold strings; any
// other value stays in the raw object and is reported by Extra.
func (d *PromptDetails) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := PromptDetails{raw: raw}
	for key, dst := range out.typedFields() {
		v, ok := raw[key]
		if !ok || isNull(v) {
			continue
		}
		if key != FieldPromptText && !isString(v) {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
	}
	*d = out
	return nil
}

// MarshalJSON re-encodes the record. Unknown fields are written back as
// received; typed fields reflect their current values.
func (d PromptDetails) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.raw)+4)
	for k, v := range d.raw {
		out[k] = v
	}
	for key, val := range d.typedFields() {
		if *val == "" && !isString(d.raw[key]) {
			continue
		}
		b, err := json.Marshal(*val)
		if err != nil {
			return nil, err
		}
		out[key] = b
	}
	return json.Marshal(out)
}

// Has reports whether key was present in the response with a non-null value.
func (d *PromptDetails) Has(key string) bool {
	v, ok := d.raw[key]
	return ok && !isNull(v)
}

// Empty reports whether the decoded object carried no keys at all.
func (d *PromptDetails) Empty() bool { return len(d.raw) == 0 }

// Extra returns the fields of the response the client does not model,
// including typed fields whose value was not a string.
func (d *PromptDetails) Extra() map[string]json.RawMessage {
	extra := make(map[string]json.RawMessage)
	typed := d.typedFields()
	for k, v := range d.raw {
		if _, ok := typed[k]; ok && (isNull(v) || isString(v)) {
			continue
		}
		extra[k] = v
	}
	return extra
}

// UpdatedTime parses UpdatedAt as an RFC 3339 timestamp.
func (d *PromptDetails) UpdatedTime() (time.Time, bool) {
	if d.UpdatedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, d.UpdatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (d *PromptDetails) typedFields() map[string]*string {
	return map[string]*string{
		FieldAgentName:  &d.AgentName,
		FieldPromptText: &d.PromptText,
		FieldPromptID:   &d.PromptID,
		FieldUpdatedAt:  &d.UpdatedAt,
	}
}

// ErrorResponse is the body the service sends with 4xx/5xx statuses.
type ErrorResponse struct {
	Error json.RawMessage `json:"error"`
}

// Detail renders the "error" value: strings as-is, numbers and booleans as
// their JSON text. ok is false for a missing, null, object or array value.
func (r ErrorResponse) Detail() (detail string, ok bool) {
	v := bytes.TrimSpace(r.Error)
	if len(v) == 0 || isNull(v) || v[0] == '{' || v[0] == '[' {
		return "", false
	}
	if isString(v) {
		if err := json.Unmarshal(v, &detail); err != nil {
			return "", false
		}
		return detail, true
	}
	return string(v), true
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func isString(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '"'
}

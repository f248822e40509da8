package request

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

// Actions accepted by POST /api/status
const (
	ActionUpdate = "update"
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// StatusRequest is the request body for POST /api/status.
// Fields not used by the chosen action are ignored.
type StatusRequest struct {
	Action   string          `json:"action"`
	Username FlexString      `json:"username"`
	PIN      FlexString      `json:"pin"`
	AdminPIN FlexString      `json:"adminPin"`
	Active   json.RawMessage `json:"active"`
}

// ActiveFlag returns the active field, which must be a JSON boolean
func (r *StatusRequest) ActiveFlag() (bool, bool) {
	switch string(bytes.TrimSpace(r.Active)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// FlexString decodes from a JSON string or number. Numbers keep their
// literal text.
type FlexString string

var errNotStringOrNumber = errors.New("expected string or number")

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = FlexString(n.String())
		return nil
	default:
		return errNotStringOrNumber
	}
}

// String returns the decoded value
func (f FlexString) String() string {
	return string(f)
}

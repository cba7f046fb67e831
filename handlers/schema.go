// Package handlers schema.go
package handlers

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// intentSchema constrains every inbound frame before dispatch: a known
// type discriminator and correctly typed fields, nothing extra. Frames
// failing validation are dropped silently, the same policy applied to
// stale or out-of-range intents deeper in the core.
const intentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["type"],
  "properties": {
    "type": {
      "enum": ["join", "move", "boost", "respawn", "eatFood", "playerDied"]
    },
    "name": {"type": "string", "maxLength": 32},
    "skin": {"type": "integer", "minimum": 0},
    "heading": {"type": "number"},
    "active": {"type": "boolean"},
    "foodId": {"type": "string"},
    "killerId": {"type": "string"}
  },
  "additionalProperties": false
}`

var compiledIntentSchema = jsonschema.MustCompileString("intent.schema.json", intentSchema)

// validateIntentFrame checks one raw frame against the intent schema.
func validateIntentFrame(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return compiledIntentSchema.Validate(v)
}

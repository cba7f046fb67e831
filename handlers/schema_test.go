package handlers

import (
	"strings"
	"testing"
)

func TestValidateIntentFrameAccepts(t *testing.T) {
	valid := []string{
		`{"type":"join","name":"alice","skin":2}`,
		`{"type":"move","heading":182.5}`,
		`{"type":"boost","active":true}`,
		`{"type":"respawn"}`,
		`{"type":"eatFood","foodId":"f42"}`,
		`{"type":"playerDied"}`,
		`{"type":"playerDied","killerId":"abc"}`,
	}
	for _, frame := range valid {
		if err := validateIntentFrame([]byte(frame)); err != nil {
			t.Fatalf("frame %s must validate: %v", frame, err)
		}
	}
}

func TestValidateIntentFrameRejects(t *testing.T) {
	invalid := []string{
		`not json`,
		`{}`,
		`{"type":"teleport"}`,
		`{"type":"move","heading":"north"}`,
		`{"type":"boost","active":1}`,
		`{"type":"move","heading":0,"extra":true}`,
		`{"type":"join","name":"` + strings.Repeat("a", 64) + `"}`,
		`[]`,
	}
	for _, frame := range invalid {
		if err := validateIntentFrame([]byte(frame)); err == nil {
			t.Fatalf("frame %s must be rejected", frame)
		}
	}
}

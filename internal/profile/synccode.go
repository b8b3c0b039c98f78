package profile

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// SyncCodeVersion tags codes produced by this build. Codes without a version
// field are legacy exports and remain importable.
const SyncCodeVersion = 1

// syncPayload is the wire shape of a DNA sync code: base64-encoded JSON with
// abbreviated keys, kept field-compatible with legacy exports.
type syncPayload struct {
	V  int        `json:"v,omitempty"`
	N  string     `json:"n"`
	G  string     `json:"g"`
	S  Scores     `json:"s"`
	P  int        `json:"p"`
	St int        `json:"st,omitempty"`
	M  []string   `json:"m,omitempty"`
	H  []Snapshot `json:"h,omitempty"`
}

// SyncData is a decoded sync code.
type SyncData struct {
	Version          int
	Name             string
	Grade            string
	Scores           Scores
	Progress         int
	Streak           int
	CompletedModules []string
	History          []Snapshot
}

// EncodeSyncCode serializes the shareable slice of a profile into a DNA sync
// code for manual teacher-student transfer.
func EncodeSyncCode(p *Profile) string {
	payload := syncPayload{
		V:  SyncCodeVersion,
		N:  p.Name,
		G:  p.ClassSection,
		S:  p.Scores.Clamped(),
		P:  p.Progress,
		St: p.Streak,
		M:  p.CompletedModules,
		H:  p.ScoreHistory,
	}
	data, _ := json.Marshal(payload)
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeSyncCode parses a DNA sync code. Malformed input returns an error and
// no partial data. Missing fields are tolerated: absent score dimensions read
// as zero and absent version marks a legacy code.
func DecodeSyncCode(code string) (SyncData, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return SyncData{}, fmt.Errorf("invalid sync code: %w", err)
	}

	var payload syncPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return SyncData{}, fmt.Errorf("invalid sync code: %w", err)
	}
	if payload.N == "" {
		return SyncData{}, fmt.Errorf("invalid sync code: missing name")
	}

	if payload.S == nil {
		payload.S = Scores{}
	}
	return SyncData{
		Version:          payload.V,
		Name:             payload.N,
		Grade:            payload.G,
		Scores:           payload.S.Clamped(),
		Progress:         clampScore(payload.P),
		Streak:           payload.St,
		CompletedModules: payload.M,
		History:          payload.H,
	}, nil
}

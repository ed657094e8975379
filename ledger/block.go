package ledger

import "github.com/luca-patrignani/rankmatch/domain/game"

// Block records one finished turn.
type Block struct {
	Index     int             `json:"index"`
	Timestamp int64           `json:"timestamp"`
	PrevHash  string          `json:"prev_hash"`
	Hash      string          `json:"hash"`
	Turn      game.TurnRecord `json:"turn"`
	Metadata  Metadata        `json:"metadata"`
}

type Metadata struct {
	SessionID string            `json:"session_id"`
	Extra     map[string]string `json:"extra,omitempty"`
}

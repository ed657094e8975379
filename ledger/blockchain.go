package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/luca-patrignani/rankmatch/domain/game"
)

// Blockchain is the append-only turn history of one game session.
type Blockchain struct {
	mu        sync.RWMutex
	sessionID string
	blocks    []Block
}

// NewBlockchain creates a new blockchain with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and an empty turn.
func NewBlockchain(sessionID uuid.UUID) *Blockchain {
	bc := &Blockchain{
		sessionID: sessionID.String(),
		blocks:    make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Metadata:  Metadata{SessionID: bc.sessionID},
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Record appends turn stamped with its event; it makes Blockchain a
// game.Recorder.
func (bc *Blockchain) Record(turn game.TurnRecord) error {
	return bc.Append(turn, map[string]string{"event": Event(turn)})
}

// Event names what happened in turn: "finish", "mismatch" or "turn".
func Event(turn game.TurnRecord) string {
	switch {
	case turn.Finished:
		return "finish"
	case !turn.Rejected.IsZero():
		return "mismatch"
	default:
		return "turn"
	}
}

// Append adds a new block for turn. It calculates the block hash, validates
// the block against the previous block, and appends it. The extra parameter
// can optionally contain additional metadata.
func (bc *Blockchain) Append(turn game.TurnRecord, extra ...map[string]string) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Turn:      turn,
		Metadata: Metadata{
			SessionID: bc.sessionID,
			Extra:     extraMsg,
		},
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	bc.blocks = append(bc.blocks, newBlock)
	return nil
}

// GetLatest returns the most recently added block.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, fmt.Errorf("blockchain is empty")
	}
	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return bc.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Turns returns every recorded turn in order.
func (bc *Blockchain) Turns() []game.TurnRecord {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) < 2 {
		return nil
	}
	turns := make([]game.TurnRecord, 0, len(bc.blocks)-1)
	for _, b := range bc.blocks[1:] {
		turns = append(turns, b.Turn)
	}
	return turns
}

// Verify validates the integrity of the entire chain: the genesis block, then
// each block's hash, index continuity and previous hash linkage.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}
	if bc.blocks[0].PrevHash != "0" || bc.blocks[0].Index != 0 {
		return fmt.Errorf("invalid genesis block")
	}
	if bc.blocks[0].Hash != calculateHash(bc.blocks[0]) {
		return fmt.Errorf("invalid genesis hash")
	}
	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock verifies a block relative to the previous block.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if current.Metadata.SessionID != previous.Metadata.SessionID {
		return fmt.Errorf("session changed: expected %s, got %s", previous.Metadata.SessionID, current.Metadata.SessionID)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block from its index,
// timestamp, previous hash, JSON encoded turn and session ID.
func calculateHash(block Block) string {
	turnBytes, _ := json.Marshal(block.Turn)
	extraBytes, _ := json.Marshal(block.Metadata.Extra)

	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(turnBytes),
		block.Metadata.SessionID,
		string(extraBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

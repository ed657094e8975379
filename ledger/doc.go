// Package ledger records the turns of a game session in a hash-chained,
// append-only log.
//
// # Core Components
//
// Blockchain: the turn history of one session. It implements game.Recorder,
// so an Engine appends a block after every finished turn.
//
// Block: one finished turn with the hash of the previous block.
//
// # Properties
//
// Any change to a recorded turn breaks the hash chain, which Verify detects.
// The history lives in memory for the duration of the game.
package ledger

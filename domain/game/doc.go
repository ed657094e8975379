// Package game implements the rank-matching card game engine: seating,
// dealing, the per-turn protocol and scoring.
//
// # Core Types
//
// Session: the deck, the table pile and the seated players of one game.
//
// Player: a named seat owning a hand zone.
//
// Engine: runs setup, one turn per seat in seat order, and game termination.
//
// # Turn Flow
//
// A turn is: optional early-finish offer (score below the threshold), lay-down
// of one or more same-rank cards into a pending buffer, a draw from the deck or
// the table, then the pending cards are committed to the table.
//
// Player input comes from a Console; invalid answers are re-prompted and never
// reported as errors.
package game

// Package deck implements playing cards and the zones they move between.
//
// A Zone is used for the draw deck, the table pile and every player hand.
// Cards are only created by NewStandardDeck; every other operation moves
// existing cards, so the total number of cards is conserved by transfers.
package deck

// meta/meta.go
package meta

// BOARD_SIZE defines the width and height of the standard board.
const BOARD_SIZE = 20

// NUM_PIECES defines the number of pieces in each player's set.
const NUM_PIECES = 21

// TOTAL_CELLS is the sum of the cell counts of all pieces in a set.
const TOTAL_CELLS = 89

// MAX_PLAYERS defines the number of starting corners on the board.
const MAX_PLAYERS = 4

// ALL_PLACED_BONUS is awarded to a player who places every piece.
const ALL_PLACED_BONUS = 15

// MONOMINO_LAST_BONUS replaces ALL_PLACED_BONUS when the last piece placed was the monomino.
const MONOMINO_LAST_BONUS = 20

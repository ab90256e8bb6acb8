// Package levelfmt reads and writes the ASCII level format:
//
//	#  Wall          $  Box on Floor      @  Player on Floor
//	␣  Floor         *  Box on Target     +  Player on Target
//	.  Target
//
// Parse splits a level string into the two halves the rest of the module
// works with: the immutable board.Board (terrain only) and the initial
// puzzle.GameState (player + boxes). Leading and trailing blank lines are
// ignored, short rows are right-padded with Floor to the longest row
// width, and unknown characters parse as Floor. Exactly one player glyph
// is required. Render is the exact inverse, so parsing a rendered state
// yields an equal state.
package levelfmt

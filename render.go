package chess

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// Board rendering (C15). Grounded on barakmich-chess's own go.mod, which
// requires ajstarks/svgo even though no retrieved file in the teacher pack
// wires it; this gives it a home as a debug/visualization helper for
// dumping a failing Perft position to an SVG diagram.

const squareSize = 64

var lightSquareColor = "#eeeed2"
var darkSquareColor = "#769656"

// RenderSVG draws an 8x8 board diagram of pos to w: alternating square
// colors, piece glyphs, and file/rank labels along the edges.
func (pos *Position) RenderSVG(w io.Writer) error {
	side := squareSize * numOfSquaresInRow
	canvas := svg.New(w)
	canvas.Start(side+squareSize, side+squareSize)
	defer canvas.End()

	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			x := int(f) * squareSize
			y := (int(Rank8) - int(r)) * squareSize

			color := lightSquareColor
			if (int(f)+int(r))%2 == 0 {
				color = darkSquareColor
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+color)

			sq := NewSquare(f, r)
			if p := pos.PieceAt(sq); p != NoPiece {
				canvas.Text(x+squareSize/2, y+squareSize/2+8, p.String(),
					"text-anchor:middle;font-size:36px")
			}
		}

		canvas.Text(side+squareSize/2, (int(Rank8)-int(r))*squareSize+squareSize/2+8,
			r.String(), "text-anchor:middle;font-size:16px")
	}

	for f := FileA; f <= FileH; f++ {
		canvas.Text(int(f)*squareSize+squareSize/2, side+squareSize/2+8,
			f.String(), "text-anchor:middle;font-size:16px")
	}

	return nil
}

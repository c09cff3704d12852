package chess

import "strconv"

// numOfSquaresInBoard is the number of squares on a chess board.
const numOfSquaresInBoard = 64

// numOfSquaresInRow is the number of squares in a single rank or file.
const numOfSquaresInRow = 8

// Square is a board square, numbered 0..63 in the reverse little-endian
// mapping: file h rank 1 is 0, file a rank 1 is 7, file h rank 8 is 56,
// file a rank 8 is 63. A single-piece bitboard bb = 1<<sq recovers its
// square via a bit-scan, so this numbering must stay consistent with the
// bitboard layout everywhere in the package.
type Square int8

// NoSquare represents the absence of a square, e.g. no en passant target.
const NoSquare Square = -1

const (
	H1 Square = iota
	G1
	F1
	E1
	D1
	C1
	B1
	A1
	H2
	G2
	F2
	E2
	D2
	C2
	B2
	A2
	H3
	G3
	F3
	E3
	D3
	C3
	B3
	A3
	H4
	G4
	F4
	E4
	D4
	C4
	B4
	A4
	H5
	G5
	F5
	E5
	D5
	C5
	B5
	A5
	H6
	G6
	F6
	E6
	D6
	C6
	B6
	A6
	H7
	G7
	F7
	E7
	D7
	C7
	B7
	A7
	H8
	G8
	F8
	E8
	D8
	C8
	B8
	A8
)

// File is a board file, FileA..FileH.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a board rank, Rank1..Rank8.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NewSquare builds a square from a file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)*numOfSquaresInRow + (int(FileH) - int(f)))
}

// File returns the file of the square.
func (sq Square) File() File {
	return File(int(FileH) - int(sq)%numOfSquaresInRow)
}

// Rank returns the rank of the square.
func (sq Square) Rank() Rank {
	return Rank(int(sq) / numOfSquaresInRow)
}

// String implements the fmt.Stringer interface and returns the square's
// algebraic notation, e.g. "e4". Returns "-" for NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// String implements the fmt.Stringer interface.
func (f File) String() string {
	return string(rune('a' + int(f)))
}

// String implements the fmt.Stringer interface.
func (r Rank) String() string {
	return strconv.Itoa(int(r) + 1)
}

var strToSquareMap = func() map[string]Square {
	m := make(map[string]Square, numOfSquaresInBoard)
	for f := FileA; f <= FileH; f++ {
		for r := Rank1; r <= Rank8; r++ {
			sq := NewSquare(f, r)
			m[sq.String()] = sq
		}
	}
	return m
}()

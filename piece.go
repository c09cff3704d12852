package chess

// NOTE:
// Piece values are chosen to index directly into a contiguous 12-element
// array of bitboards (see Position's board field): white pieces occupy
// indices 0..5 and black pieces occupy 6..11, each in King, Queen, Rook,
// Bishop, Knight, Pawn order. Iterating "every piece board" is iterating
// this fixed-length array, not reflecting over a sparse or stringly-typed
// lookup.

// Color represents the color of a chess piece.
type Color uint8

const (
	// White represents the color white.
	White Color = 0
	// Black represents the color black.
	Black Color = 1
	// NoColor represents no color.
	NoColor Color = 255
)

// Other returns the opposite color of the receiver.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// String implements the fmt.Stringer interface and returns
// the color's FEN compatible notation.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns a display friendly name.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// PieceType is the type of a piece.
type PieceType uint8

const (
	// King represents a king.
	King PieceType = 0
	// Queen represents a queen.
	Queen PieceType = 1
	// Rook represents a rook.
	Rook PieceType = 2
	// Bishop represents a bishop.
	Bishop PieceType = 3
	// Knight represents a knight.
	Knight PieceType = 4
	// Pawn represents a pawn.
	Pawn PieceType = 5
	// NoPieceType represents a lack of piece type.
	NoPieceType PieceType = 255
)

// PromoType is a promotion choice.
type PromoType uint8

const (
	NoPromo PromoType = iota
	// PromoQueen represents a queen promotion.
	PromoQueen
	// PromoRook represents a rook promotion.
	PromoRook
	// PromoBishop represents a bishop promotion.
	PromoBishop
	// PromoKnight represents a knight promotion.
	PromoKnight
)

func (promo PromoType) PieceType() PieceType {
	switch promo {
	case PromoQueen:
		return Queen
	case PromoRook:
		return Rook
	case PromoBishop:
		return Bishop
	case PromoKnight:
		return Knight
	}
	return NoPieceType
}

func promoFromPieceType(p PieceType) PromoType {
	switch p {
	case Queen:
		return PromoQueen
	case Rook:
		return PromoRook
	case Knight:
		return PromoKnight
	case Bishop:
		return PromoBishop
	}
	return NoPromo
}

var allPieceTypes = [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

// PieceTypes returns all piece types, king first.
func PieceTypes() [6]PieceType {
	return allPieceTypes
}

func (p PieceType) String() string {
	switch p {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	}
	return ""
}

// Piece is a piece type with a color, doubling as the board-array index for
// its bitboard (0..5 white, 6..11 black).
type Piece uint8

const (
	WhiteKing Piece = iota
	WhiteQueen
	WhiteRook
	WhiteBishop
	WhiteKnight
	WhitePawn
	BlackKing
	BlackQueen
	BlackRook
	BlackBishop
	BlackKnight
	BlackPawn
	// NoPiece represents no piece.
	NoPiece Piece = 255
)

// numPieces is the width of Position's board array.
const numPieces = 12

var allPieces = [numPieces]Piece{
	WhiteKing, WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight, WhitePawn,
	BlackKing, BlackQueen, BlackRook, BlackBishop, BlackKnight, BlackPawn,
}

// GetPiece returns the piece of the given type and color.
func GetPiece(t PieceType, c Color) Piece {
	return Piece(uint8(c)*6 + uint8(t))
}

// Type returns the type of the piece.
func (p Piece) Type() PieceType {
	return PieceType(uint8(p) % 6)
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	return Color(uint8(p) / 6)
}

// String implements the fmt.Stringer interface and returns a unicode glyph,
// as drawn by RenderSVG. See getFENChar for the FEN letter form.
func (p Piece) String() string {
	v, ok := pieceUnicodes[p]
	if !ok {
		return " "
	}
	return v
}

var pieceUnicodes = map[Piece]string{
	WhiteKing:   "♔",
	WhiteQueen:  "♕",
	WhiteRook:   "♖",
	WhiteBishop: "♗",
	WhiteKnight: "♘",
	WhitePawn:   "♙",
	BlackKing:   "♚",
	BlackQueen:  "♛",
	BlackRook:   "♜",
	BlackBishop: "♝",
	BlackKnight: "♞",
	BlackPawn:   "♟",
}

// getFENChar returns the piece's FEN letter: uppercase for white, lowercase
// for black.
func (p Piece) getFENChar() byte {
	return fenReverseMap[p]
}

var fenReverseMap = func() map[Piece]byte {
	m := make(map[Piece]byte, numPieces)
	for _, p := range allPieces {
		c := p.Type().String()[0]
		if p.Color() == White {
			c -= 'a' - 'A'
		}
		m[p] = c
	}
	return m
}()

var fenPieceMap = func() map[byte]Piece {
	m := make(map[byte]Piece, numPieces)
	for p, c := range fenReverseMap {
		m[c] = p
	}
	return m
}()

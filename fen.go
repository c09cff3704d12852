package chess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN decodes a FEN string into a Position. Malformed input (wrong
// token count, unknown piece letter, a rank row that doesn't sum to 8,
// illegal castling letters, an illegal en-passant square, non-numeric
// clocks) is rejected per spec.md §7 kind-1. Positions that parse but
// violate basic legality (no king of some color, pawns on the back ranks)
// are rejected per kind-2.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		log.Warningf("fen: expected 6 fields, got %d: %q", len(fields), fen)
		return nil, fmt.Errorf("chess: invalid fen %q: expected 6 fields, got %d", fen, len(fields))
	}

	pos := &Position{}
	if err := parsePlacement(pos, fields[0]); err != nil {
		log.Warningf("fen: %v", err)
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		err := fmt.Errorf("chess: invalid fen %q: bad side to move %q", fen, fields[1])
		log.Warningf("fen: %v", err)
		return nil, err
	}

	rights, err := parseCastleRights(fields[2])
	if err != nil {
		log.Warningf("fen: %v", err)
		return nil, err
	}
	pos.castleRights = rights

	if fields[3] == "-" {
		pos.enPassantTarget = NoSquare
	} else {
		sq, ok := strToSquareMap[fields[3]]
		if !ok {
			err := fmt.Errorf("chess: invalid fen %q: bad en passant square %q", fen, fields[3])
			log.Warningf("fen: %v", err)
			return nil, err
		}
		pos.enPassantTarget = sq
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		err := fmt.Errorf("chess: invalid fen %q: bad half-move clock %q", fen, fields[4])
		log.Warningf("fen: %v", err)
		return nil, err
	}
	pos.halfMoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		err := fmt.Errorf("chess: invalid fen %q: bad full-move number %q", fen, fields[5])
		log.Warningf("fen: %v", err)
		return nil, err
	}
	pos.fullMoveNumber = full

	if err := validatePosition(pos); err != nil {
		return nil, err
	}

	pos.gameUpdate()
	return pos, nil
}

func parsePlacement(pos *Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("chess: invalid fen: expected 8 ranks, got %d", len(rows))
	}
	for i, row := range rows {
		r := Rank8 - Rank(i)
		file := FileA
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			p, ok := fenPieceMap[byte(ch)]
			if !ok {
				return fmt.Errorf("chess: invalid fen: unknown piece letter %q", ch)
			}
			if file > FileH {
				return fmt.Errorf("chess: invalid fen: rank %q overflows 8 files", row)
			}
			pos.boards[p] = SetBit(pos.boards[p], NewSquare(file, r))
			file++
		}
		if file != FileH+1 {
			return fmt.Errorf("chess: invalid fen: rank %q does not sum to 8", row)
		}
	}
	pos.recomputeOccupancies()
	return nil
}

func parseCastleRights(s string) (castleRight, error) {
	if s == "-" {
		return 0, nil
	}
	var r castleRight
	for _, ch := range s {
		switch ch {
		case 'K':
			r |= castleWK
		case 'Q':
			r |= castleWQ
		case 'k':
			r |= castleBK
		case 'q':
			r |= castleBQ
		default:
			return 0, fmt.Errorf("chess: invalid fen: bad castling letter %q", ch)
		}
	}
	return r, nil
}

var errNoKing = errors.New("chess: invalid position: missing king")
var errBothInCheck = errors.New("chess: invalid position: both kings in check")
var errPawnOnBackRank = errors.New("chess: invalid position: pawn on first or eighth rank")
var errSideNotToMoveInCheck = errors.New("chess: invalid position: side not to move is in check")

func validatePosition(pos *Position) error {
	if PopCount(pos.boards[WhiteKing]) != 1 || PopCount(pos.boards[BlackKing]) != 1 {
		log.Warningf("fen: %v", errNoKing)
		return errNoKing
	}
	pawns := pos.boards[WhitePawn] | pos.boards[BlackPawn]
	if pawns&(bbRank1|bbRank8) != 0 {
		log.Warningf("fen: %v", errPawnOnBackRank)
		return errPawnOnBackRank
	}

	pos.analyseChecksAndPins(White)
	pos.analyseChecksAndPins(Black)
	whiteInCheck := pos.checkMaskW != checkMaskAll
	blackInCheck := pos.checkMaskB != checkMaskAll
	if whiteInCheck && blackInCheck {
		log.Warningf("fen: %v", errBothInCheck)
		return errBothInCheck
	}
	notToMove := pos.sideToMove.Other()
	if notToMove == White && whiteInCheck {
		log.Warningf("fen: %v", errSideNotToMoveInCheck)
		return errSideNotToMoveInCheck
	}
	if notToMove == Black && blackInCheck {
		log.Warningf("fen: %v", errSideNotToMoveInCheck)
		return errSideNotToMoveInCheck
	}
	return nil
}

// RenderFEN renders pos as a FEN string. It is the inverse of ParseFEN and
// round-trips for any position reachable through normal play.
func RenderFEN(pos *Position) string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := pos.PieceAt(NewSquare(f, r))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.getFENChar())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.sideToMove.String())

	sb.WriteByte(' ')
	sb.WriteString(renderCastleRights(pos.castleRights))

	sb.WriteByte(' ')
	if pos.enPassantTarget == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.enPassantTarget.String())
	}

	fmt.Fprintf(&sb, " %d %d", pos.halfMoveClock, pos.fullMoveNumber)
	return sb.String()
}

func renderCastleRights(r castleRight) string {
	s := ""
	if r&castleWK != 0 {
		s += "K"
	}
	if r&castleWQ != 0 {
		s += "Q"
	}
	if r&castleBK != 0 {
		s += "k"
	}
	if r&castleBQ != 0 {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

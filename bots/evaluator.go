package bots

import "chessMinimax/board"

// MaterialEvaluator returns the material difference of the last scan.
type MaterialEvaluator struct{}

func (MaterialEvaluator) Evaluate(_ board.Board, s *Summary) int {
	return s.MyMaterial - s.TheirMaterial
}

// PositionalEvaluator adds static positional terms to material. Scores are in
// hundredths of a pawn.
type PositionalEvaluator struct{}

const (
	MaterialWeight      = 100
	DoubledPawnPenalty  = 10
	IsolatedPawnPenalty = 15
	CenterBonus         = 20
	ExtendedCenterBonus = 10
	AdvancedPieceBonus  = 10
	KingShelterBonus    = 20
	KingDangerPenalty   = 30
)

func (e PositionalEvaluator) Evaluate(b board.Board, s *Summary) int {
	score := (s.MyMaterial - s.TheirMaterial) * MaterialWeight

	score += e.pawnStructure(s.Mine) - e.pawnStructure(s.Theirs)
	score += e.centerControl(s.Mine) - e.centerControl(s.Theirs)
	score += e.pieceActivity(s.Mine) - e.pieceActivity(s.Theirs)
	score += e.kingSafety(b, s.Mine) - e.kingSafety(b, s.Theirs)
	return score
}

// pawnStructure penalises doubled and isolated pawns of one side.
func (e PositionalEvaluator) pawnStructure(pieces []Square) int {
	var files [board.Size]int
	for _, sq := range pieces {
		if sq.Piece.Kind == board.Pawn {
			files[sq.Pos.X]++
		}
	}

	score := 0
	for file, count := range files {
		if count == 0 {
			continue
		}
		if count > 1 {
			score -= DoubledPawnPenalty * (count - 1)
		}
		left := file > 0 && files[file-1] > 0
		right := file < board.Size-1 && files[file+1] > 0
		if !left && !right {
			score -= IsolatedPawnPenalty * count
		}
	}
	return score
}

func (e PositionalEvaluator) centerControl(pieces []Square) int {
	score := 0
	for _, sq := range pieces {
		x, y := sq.Pos.X, sq.Pos.Y
		switch {
		case x >= 3 && x <= 4 && y >= 3 && y <= 4:
			score += CenterBonus
		case x >= 2 && x <= 5 && y >= 2 && y <= 5:
			score += ExtendedCenterBonus
		}
	}
	return score
}

// pieceActivity rewards non-king pieces standing in the enemy half.
func (e PositionalEvaluator) pieceActivity(pieces []Square) int {
	score := 0
	for _, sq := range pieces {
		if sq.Piece.Kind == board.King {
			continue
		}
		if (sq.Piece.Side == board.White && sq.Pos.Y >= 4) ||
			(sq.Piece.Side == board.Black && sq.Pos.Y <= 3) {
			score += AdvancedPieceBonus
		}
	}
	return score
}

func (e PositionalEvaluator) kingSafety(b board.Board, pieces []Square) int {
	for _, sq := range pieces {
		if sq.Piece.Kind == board.King {
			return e.kingProtection(b, sq.Pos, sq.Piece.Side)
		}
	}
	return 0
}

func (e PositionalEvaluator) kingProtection(b board.Board, king board.Position, side board.Side) int {
	score := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			pos := board.Position{X: king.X + dx, Y: king.Y + dy}
			if !pos.Valid() {
				continue
			}
			p := b.PieceAt(pos)
			switch {
			case p.Empty():
			case p.Side == side:
				score += KingShelterBonus
			default:
				score -= KingDangerPenalty
			}
		}
	}
	return score
}

package board

// AttackMask selects which attacker categories IsAttacked/CountAttackers
// consider. Move generation's legality filter narrows this to sliding
// attackers only once a position is known not to be in check (the only
// way a legal non-king move can expose the king is along a pin line),
// widening it back to every category whenever the moved piece is the
// king itself.
type AttackMask struct {
	Diagonal bool
	Straight bool
	Knight   bool
	King     bool
	Pawn     bool
}

var fullAttackMask = AttackMask{Diagonal: true, Straight: true, Knight: true, King: true, Pawn: true}

var diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var straightDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}
var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// IsAttacked reports whether (rank,file) is attacked by a piece of the
// given color, restricted to the attacker categories in mask.
func IsAttacked(b *Board, rank, file int, attackerWhite bool, mask AttackMask) bool {
	if mask.Diagonal && slidingAttack(b, rank, file, attackerWhite, diagonalDirs[:], BishopKind) {
		return true
	}
	if mask.Straight && slidingAttack(b, rank, file, attackerWhite, straightDirs[:], RookKind) {
		return true
	}
	if mask.Knight && knightAttack(b, rank, file, attackerWhite) {
		return true
	}
	if mask.King && kingAttack(b, rank, file, attackerWhite) {
		return true
	}
	if mask.Pawn && pawnAttack(b, rank, file, attackerWhite) {
		return true
	}
	return false
}

// CountAttackers counts the attacker categories in mask (diagonal
// slider, straight slider, knight, king, pawn) that bear on (rank,file);
// several attackers of one category count once. It is used only to
// distinguish a single check from a double check when the moving piece
// is a knight (see movegen.go).
func CountAttackers(b *Board, rank, file int, attackerWhite bool, mask AttackMask) int {
	count := 0
	if mask.Diagonal && slidingAttack(b, rank, file, attackerWhite, diagonalDirs[:], BishopKind) {
		count++
	}
	if mask.Straight && slidingAttack(b, rank, file, attackerWhite, straightDirs[:], RookKind) {
		count++
	}
	if mask.Knight && knightAttack(b, rank, file, attackerWhite) {
		count++
	}
	if mask.King && kingAttack(b, rank, file, attackerWhite) {
		count++
	}
	if mask.Pawn && pawnAttack(b, rank, file, attackerWhite) {
		count++
	}
	return count
}

// slidingAttack walks each of the four directions in dirs until it hits
// the board edge or a piece; a hit counts as an attack if the piece is
// the attacker's color and is either sliderKind or a queen.
func slidingAttack(b *Board, rank, file int, attackerWhite bool, dirs [][2]int, sliderKind uint8) bool {
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for onBoard(r, f) {
			code := b.Field[r][f]
			if code != Empty {
				if IsWhite(code) == attackerWhite {
					k := Kind(code)
					if k == sliderKind || k == QueenKind {
						return true
					}
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return false
}

func knightAttack(b *Board, rank, file int, attackerWhite bool) bool {
	for _, o := range knightOffsets {
		r, f := rank+o[0], file+o[1]
		if !onBoard(r, f) {
			continue
		}
		code := b.Field[r][f]
		if code != Empty && IsWhite(code) == attackerWhite && Kind(code) == KnightKind {
			return true
		}
	}
	return false
}

func kingAttack(b *Board, rank, file int, attackerWhite bool) bool {
	for _, o := range kingOffsets {
		r, f := rank+o[0], file+o[1]
		if !onBoard(r, f) {
			continue
		}
		code := b.Field[r][f]
		if code != Empty && IsWhite(code) == attackerWhite && Kind(code) == KingKind {
			return true
		}
	}
	return false
}

// pawnAttack checks the two squares an attacking pawn would capture
// from: a white pawn attacks diagonally forward (toward higher ranks),
// a black pawn toward lower ranks.
func pawnAttack(b *Board, rank, file int, attackerWhite bool) bool {
	behindRank := rank - 1
	if !attackerWhite {
		behindRank = rank + 1
	}
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if !onBoard(behindRank, f) {
			continue
		}
		code := b.Field[behindRank][f]
		if code != Empty && IsWhite(code) == attackerWhite && Kind(code) == PawnKind {
			return true
		}
	}
	return false
}

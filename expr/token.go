package expr

type tokenType int

const (
	tEOF tokenType = iota
	tIllegal
	tNumber
	tIdent

	tStar
	tSlash
	tPercent
	tPlus
	tMinus
	tShl
	tShr
	tLt
	tLe
	tGt
	tGe
	tEq
	tNe
	tAmp
	tCaret
	tPipe
	tAndAnd
	tOrOr
	tLParen
	tRParen
)

type token struct {
	typ     tokenType
	literal string
}

// Package model holds the Training Model: the frequency tables built up
// during training, and the derived sets (abbreviations, collocations,
// sentence starters, orthographic context) the sentence tokenizer reads
// from. A Model is safe for concurrent reads once training has finished;
// nothing in this package synchronizes concurrent writes.
package model

// Loader produces a ready-to-use Model without running the Trainer,
// e.g. by decoding a pretrained dataset bundled with the binary.
type Loader interface {
	Load() (*Model, error)
}

// OrthographicContext is a bitset describing every orthographic position
// (sentence-initial, sentence-internal, unknown) and letter case
// (upper, lower) a given token type has ever been observed in.
type OrthographicContext uint8

const (
	BegUpper OrthographicContext = 1 << (iota + 1)
	MidUpper
	UnkUpper
	BegLower
	MidLower
	UnkLower
)

// OrthoUpper and OrthoLower are the union of every upper/lower-case
// context bit, used to ask "has this type ever appeared uppercase
// anywhere" without caring about position.
const (
	OrthoUpper = BegUpper | MidUpper | UnkUpper
	OrthoLower = BegLower | MidLower | UnkLower
)

// OrthographyPosition is where, structurally, a token was seen: right
// after a paragraph break, in the middle of a run of text, or unknown
// (e.g. right after a single newline, where paragraph structure is
// ambiguous).
type OrthographyPosition uint8

const (
	PositionInitial OrthographyPosition = 0b01000000
	PositionInternal OrthographyPosition = 0b00100000
	PositionUnknown OrthographyPosition = 0b01100000
)

// LetterCase is the case of a token's first letter.
type LetterCase uint8

const (
	CaseUpper   LetterCase = 0b10
	CaseLower   LetterCase = 0b01
	CaseUnknown LetterCase = 0b11
)

// orthoMap mirrors the small position+case lookup table the sentence
// tokenizer and trainer consult when accumulating orthographic context:
// of the nine possible (position, case) combinations, only six carry
// meaning; the rest map to 0 (no information).
var orthoMap = map[uint8]OrthographicContext{
	uint8(PositionInitial) | uint8(CaseUpper):  BegUpper,
	uint8(PositionInternal) | uint8(CaseUpper): MidUpper,
	uint8(PositionUnknown) | uint8(CaseUpper):  UnkUpper,
	uint8(PositionInitial) | uint8(CaseLower):  BegLower,
	uint8(PositionInternal) | uint8(CaseLower): MidLower,
	uint8(PositionUnknown) | uint8(CaseLower):  UnkLower,
}

// OrthoContextFor looks up the OrthographicContext for a (position,
// case) pair, returning 0 when the combination carries no information.
func OrthoContextFor(pos OrthographyPosition, c LetterCase) OrthographicContext {
	return orthoMap[uint8(pos)|uint8(c)]
}

// Model is the mutable store the Trainer writes to and the read-only
// store the sentence Tokenizer reads from.
type Model struct {
	typeCount            map[string]int
	collocationCount     map[collocationKey]int
	sentenceStarterCount map[string]int

	periodTokenCount   int
	sentenceBreakCount int

	abbreviations     map[string]struct{}
	collocations      map[string]map[string]struct{}
	sentenceStarters  map[string]struct{}
	orthographicCtxt  map[string]OrthographicContext
}

type collocationKey struct {
	left, right string
}

// New returns an empty Model, ready for training.
func New() *Model {
	return &Model{
		typeCount:            make(map[string]int),
		collocationCount:     make(map[collocationKey]int),
		sentenceStarterCount: make(map[string]int),
		abbreviations:        make(map[string]struct{}),
		collocations:         make(map[string]map[string]struct{}),
		sentenceStarters:     make(map[string]struct{}),
		orthographicCtxt:     make(map[string]OrthographicContext),
	}
}

// IncrementType records one more occurrence of typ (its normalized
// type, including any trailing period, exactly as it was observed).
// withPeriod additionally counts the occurrence toward periodTokenCount,
// mirroring the trainer's period_token_count bookkeeping.
func (m *Model) IncrementType(typ string, withPeriod bool) {
	m.typeCount[typ]++
	if withPeriod {
		m.periodTokenCount++
	}
}

// TypeCount returns how many times typ has been observed in exactly this
// form; "dr" and "dr." are counted separately.
func (m *Model) TypeCount(typ string) int { return m.typeCount[typ] }

// PeriodTokenCount returns the total number of tokens observed ending in
// a period.
func (m *Model) PeriodTokenCount() int { return m.periodTokenCount }

// TotalTypeCount is the sum of every distinct type's observed count —
// the "n" term in the log-likelihood formulas.
func (m *Model) TotalTypeCount() int {
	total := 0
	for _, c := range m.typeCount {
		total += c
	}
	return total
}

// IncrementSentenceBreak records that one more token was classified as a
// sentence break during the first annotation pass.
func (m *Model) IncrementSentenceBreak() { m.sentenceBreakCount++ }

// SentenceBreakCount returns the running count of tokens classified as
// sentence breaks.
func (m *Model) SentenceBreakCount() int { return m.sentenceBreakCount }

// IncrementCollocation records one more observed adjacency of left
// immediately followed by right.
func (m *Model) IncrementCollocation(left, right string) {
	m.collocationCount[collocationKey{left, right}]++
}

// CollocationCount returns how many times left has been observed
// immediately followed by right.
func (m *Model) CollocationCount(left, right string) int {
	return m.collocationCount[collocationKey{left, right}]
}

// IncrementSentenceStarter records one more observed occurrence of typ
// as the first token of a sentence.
func (m *Model) IncrementSentenceStarter(typ string) { m.sentenceStarterCount[typ]++ }

// SentenceStarterCount returns how many times typ has been observed as
// the first token of a sentence.
func (m *Model) SentenceStarterCount(typ string) int { return m.sentenceStarterCount[typ] }

// ContainsAbbreviation reports whether typ is a known abbreviation.
func (m *Model) ContainsAbbreviation(typ string) bool {
	_, ok := m.abbreviations[typ]
	return ok
}

// InsertAbbreviation adds typ to the set of known abbreviations. It
// reports whether typ was newly inserted.
func (m *Model) InsertAbbreviation(typ string) bool {
	if m.ContainsAbbreviation(typ) {
		return false
	}
	m.abbreviations[typ] = struct{}{}
	return true
}

// RemoveAbbreviation removes typ from the set of known abbreviations. It
// reports whether typ was present.
func (m *Model) RemoveAbbreviation(typ string) bool {
	if !m.ContainsAbbreviation(typ) {
		return false
	}
	delete(m.abbreviations, typ)
	return true
}

// ContainsSentenceStarter reports whether typ is a known sentence
// starter.
func (m *Model) ContainsSentenceStarter(typ string) bool {
	_, ok := m.sentenceStarters[typ]
	return ok
}

// InsertSentenceStarter adds typ to the set of known sentence starters.
func (m *Model) InsertSentenceStarter(typ string) bool {
	if m.ContainsSentenceStarter(typ) {
		return false
	}
	m.sentenceStarters[typ] = struct{}{}
	return true
}

// ContainsCollocation reports whether left immediately followed by
// right is a known collocation.
func (m *Model) ContainsCollocation(left, right string) bool {
	rights, ok := m.collocations[left]
	if !ok {
		return false
	}
	_, ok = rights[right]
	return ok
}

// InsertCollocation adds (left, right) to the set of known collocations.
func (m *Model) InsertCollocation(left, right string) bool {
	rights, ok := m.collocations[left]
	if !ok {
		rights = make(map[string]struct{})
		m.collocations[left] = rights
	}
	if _, ok := rights[right]; ok {
		return false
	}
	rights[right] = struct{}{}
	return true
}

// OrthographicContext returns the accumulated context for typ, or 0 if
// typ has never been observed.
func (m *Model) OrthographicContext(typ string) OrthographicContext {
	return m.orthographicCtxt[typ]
}

// MergeOrthographicContext ORs ctx into whatever context typ has already
// accumulated.
func (m *Model) MergeOrthographicContext(typ string, ctx OrthographicContext) {
	m.orthographicCtxt[typ] |= ctx
}

// CandidateSentenceStarters returns every type that has accumulated at
// least one sentence-starter candidate observation, for Finalize to
// weigh against acceptance.
func (m *Model) CandidateSentenceStarters() []string {
	out := make([]string, 0, len(m.sentenceStarterCount))
	for typ := range m.sentenceStarterCount {
		out = append(out, typ)
	}
	return out
}

// CandidateCollocations returns every (left, right) pair that has
// accumulated at least one collocation candidate observation, for
// Finalize to weigh against acceptance.
func (m *Model) CandidateCollocations() [][2]string {
	out := make([][2]string, 0, len(m.collocationCount))
	for key := range m.collocationCount {
		out = append(out, [2]string{key.left, key.right})
	}
	return out
}

// NumAbbreviations and its siblings below expose the sizes of the
// derived sets, read by tests and by the Trainer's diagnostic logging;
// they are not on the training hot path.

// NumAbbreviations returns the number of known abbreviations.
func (m *Model) NumAbbreviations() int { return len(m.abbreviations) }

// NumSentenceStarters returns the number of known sentence starters.
func (m *Model) NumSentenceStarters() int { return len(m.sentenceStarters) }

// NumCollocations returns the total number of known (left, right) pairs.
func (m *Model) NumCollocations() int {
	total := 0
	for _, rights := range m.collocations {
		total += len(rights)
	}
	return total
}

// NumOrthographicContexts returns the number of types with recorded
// orthographic context.
func (m *Model) NumOrthographicContexts() int { return len(m.orthographicCtxt) }

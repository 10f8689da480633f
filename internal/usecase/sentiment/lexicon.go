package sentiment

// entry is a lexicon word's polarity [-1, 1] and subjectivity [0, 1].
type entry struct {
	polarity     float64
	subjectivity float64
}

// lexicon scores vocabulary common in tutoring reviews. Scores follow
// the pattern-lexicon convention: strong evaluative words carry both
// high polarity magnitude and high subjectivity.
var lexicon = map[string]entry{
	// positive
	"excellent":     {1.0, 1.0},
	"amazing":       {0.9, 0.9},
	"fantastic":     {0.9, 0.9},
	"wonderful":     {1.0, 1.0},
	"awesome":       {1.0, 1.0},
	"perfect":       {1.0, 1.0},
	"great":         {0.8, 0.75},
	"best":          {1.0, 0.3},
	"good":          {0.7, 0.6},
	"love":          {0.5, 0.6},
	"loved":         {0.7, 0.8},
	"happy":         {0.8, 1.0},
	"delighted":     {0.9, 1.0},
	"pleased":       {0.7, 0.8},
	"satisfied":     {0.6, 0.7},
	"helpful":       {0.6, 0.6},
	"thank":         {0.4, 0.4},
	"thankful":      {0.6, 0.7},
	"grateful":      {0.6, 0.7},
	"appreciate":    {0.5, 0.5},
	"recommend":     {0.5, 0.5},
	"patient":       {0.5, 0.6},
	"knowledgeable": {0.6, 0.5},
	"professional":  {0.4, 0.4},
	"effective":     {0.5, 0.5},
	"clear":         {0.4, 0.4},
	"engaging":      {0.6, 0.6},
	"friendly":      {0.6, 0.7},
	"supportive":    {0.6, 0.6},
	"enthusiastic":  {0.7, 0.8},
	"excited":       {0.7, 0.8},
	"eager":         {0.5, 0.6},
	"motivated":     {0.5, 0.6},
	"inspiring":     {0.7, 0.7},
	"inspired":      {0.6, 0.7},
	"enjoyable":     {0.6, 0.7},
	"fun":           {0.6, 0.7},
	"improved":      {0.5, 0.5},
	"interesting":   {0.5, 0.5},
	"organized":     {0.4, 0.4},
	"responsive":    {0.4, 0.4},
	"flexible":      {0.3, 0.4},
	"okay":          {0.2, 0.4},
	"fine":          {0.3, 0.4},

	// negative
	"terrible":       {-0.9, 0.9},
	"awful":          {-0.9, 0.9},
	"horrible":       {-0.9, 0.9},
	"worst":          {-1.0, 0.9},
	"hate":           {-0.8, 0.9},
	"bad":            {-0.7, 0.65},
	"poor":           {-0.6, 0.6},
	"useless":        {-0.8, 0.8},
	"waste":          {-0.7, 0.6},
	"disappointing":  {-0.6, 0.7},
	"disappointed":   {-0.6, 0.7},
	"frustrating":    {-0.6, 0.7},
	"frustrated":     {-0.6, 0.7},
	"annoying":       {-0.6, 0.7},
	"annoyed":        {-0.6, 0.7},
	"irritated":      {-0.6, 0.7},
	"rude":           {-0.7, 0.8},
	"unprofessional": {-0.6, 0.6},
	"unhelpful":      {-0.6, 0.6},
	"boring":         {-0.5, 0.7},
	"confusing":      {-0.4, 0.6},
	"confused":       {-0.4, 0.6},
	"unclear":        {-0.4, 0.5},
	"difficult":      {-0.3, 0.5},
	"slow":           {-0.3, 0.4},
	"late":           {-0.3, 0.3},
	"unprepared":     {-0.5, 0.5},
	"unreliable":     {-0.5, 0.6},
	"mediocre":       {-0.3, 0.5},
	"wrong":          {-0.4, 0.5},
	"hard":           {-0.2, 0.4},
	"expensive":      {-0.3, 0.5},
	"lost":           {-0.3, 0.4},
}

// negations flip the sign of the next scored word within the lookback
// window, halving its magnitude the way double-negative hedging reads.
var negations = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"neither": {},
	"nor":     {},
	"cannot":  {},
}

// intensifierBoost scales a scored word preceded by an intensifier.
const intensifierBoost = 1.3

var intensifiers = map[string]struct{}{
	"very":       {},
	"really":     {},
	"extremely":  {},
	"incredibly": {},
	"absolutely": {},
	"so":         {},
}

// modifierWindow is how many preceding tokens are scanned for
// negations and intensifiers.
const modifierWindow = 3

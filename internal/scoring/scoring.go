// Package scoring implements the design maturity scoring model: eleven
// equally weighted Likert questions, a fixed five-band level scale, and the
// per-level narrative content shown on the result page.
package scoring

// QuestionCount is the number of questions in the current diagnosis.
const QuestionCount = 11

// MaxAnswer is the highest selectable value per question.
const MaxAnswer = 5

// MaxScore is the maximum achievable total score.
// #BUSINESS_RULE: Fixed constant, never derived from the question set at
// runtime, so historical results stay comparable if questions change.
const MaxScore = 55

// Answers holds one selected value per question, in question order.
// A zero value means the question was not answered; callers are expected
// to validate completeness before scoring.
type Answers [QuestionCount]int

// Complete reports whether every question has a value in [1, MaxAnswer].
func (a Answers) Complete() bool {
	for _, v := range a {
		if v < 1 || v > MaxAnswer {
			return false
		}
	}
	return true
}

// Sum returns the raw total of all answer values.
func (a Answers) Sum() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// Result is the computed outcome of a completed diagnosis.
type Result struct {
	TotalScore int
	Percentage float64
	Level      int
	Archetype  string
}

// band maps an inclusive upper score bound to a level and archetype label.
type band struct {
	maxScore  int
	level     int
	archetype string
}

// #BUSINESS_RULE: Bands are evaluated lowest-to-highest against TotalScore
// (not Percentage); upper bounds are inclusive. The last band acts as a
// catch-all so a future max-score change cannot leave a score unclassified.
var bands = []band{
	{15, 1, "Nascer / Foundations Missing"},
	{26, 2, "Formar / Emerging Structure"},
	{37, 3, "Operar / Operational Stability"},
	{46, 4, "Influenciar / Strategic Contribution"},
	{MaxScore, 5, "Liderar / High-Performance Design Team"},
}

// Classify returns the maturity level and archetype for a total score.
func Classify(totalScore int) (level int, archetype string) {
	for _, b := range bands {
		if totalScore <= b.maxScore {
			return b.level, b.archetype
		}
	}
	last := bands[len(bands)-1]
	return last.level, last.archetype
}

// Score computes the full result for a complete answer set. Pure function:
// no I/O, no failure modes given validated input.
func Score(a Answers) Result {
	total := a.Sum()
	level, archetype := Classify(total)
	return Result{
		TotalScore: total,
		Percentage: float64(total) / float64(MaxScore),
		Level:      level,
		Archetype:  archetype,
	}
}

// DisplayPercentage recomputes the percentage for a stored total score.
// Display always derives from the fixed MaxScore rather than trusting a
// stored percentage, to tolerate historical rows written under a
// different maximum.
func DisplayPercentage(totalScore int) float64 {
	return float64(totalScore) / float64(MaxScore)
}

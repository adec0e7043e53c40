package service

import (
	"math/rand/v2"
	"sync"

	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ScoreEngine – presence-based risk scoring
// ---------------------------------------------------------------------------

const (
	baseScore      = 60
	nameBonus      = 5
	taxIDBonus     = 5
	documentsBonus = 15
	socialBonus    = 10

	// MaxPerturbation is the largest noise term added to a score.
	MaxPerturbation = 9
)

// Perturbation supplies the noise term of a score. Values outside
// [0, MaxPerturbation] are clamped.
type Perturbation func() int

// FixedPerturbation always returns n.
func FixedPerturbation(n int) Perturbation {
	return func() int { return n }
}

// SeededPerturbation draws uniformly from [0, MaxPerturbation]. Two sources
// built from the same seed yield the same sequence. Safe for concurrent use.
func SeededPerturbation(seed uint64) Perturbation {
	var mu sync.Mutex
	rng := rand.New(rand.NewPCG(seed, seed))
	return func() int {
		mu.Lock()
		defer mu.Unlock()
		return rng.IntN(MaxPerturbation + 1)
	}
}

// ScoreEngine computes the headline risk score.
type ScoreEngine struct {
	perturb Perturbation
}

// NewScoreEngine returns an engine drawing noise from perturb. A nil
// source means no noise.
func NewScoreEngine(perturb Perturbation) *ScoreEngine {
	if perturb == nil {
		perturb = FixedPerturbation(0)
	}
	return &ScoreEngine{perturb: perturb}
}

// Compute scores a profile:
//
//	base                  60
//	company name          +5
//	tax id                +5
//	at least one document +15
//	social link           +10
//	noise                 +0..9
//
// The total is clamped to [0,100].
func (e *ScoreEngine) Compute(profile model.CompanyProfile, hasDocuments, hasSocialLink bool) valueobject.RiskScore {
	score := baseScore
	if profile.HasName() {
		score += nameBonus
	}
	if profile.HasTaxID() {
		score += taxIDBonus
	}
	if hasDocuments {
		score += documentsBonus
	}
	if hasSocialLink {
		score += socialBonus
	}
	score += clampPerturbation(e.perturb())
	return valueobject.NewRiskScore(score)
}

func clampPerturbation(n int) int {
	switch {
	case n < 0:
		return 0
	case n > MaxPerturbation:
		return MaxPerturbation
	default:
		return n
	}
}

// Package emotion derives an emotional state label from focus metrics
package emotion

import "github.com/solosprint/sprint/internal/models"

const (
	focusedAbove    = 80
	productiveAbove = 60
	distractedAbove = 40
)

// Classify maps a focus percentage to an emotional state. Values outside
// [0,100] are classified as if clamped to the nearest bound.
func Classify(focusPercentage int) models.EmotionalState {
	switch {
	case focusPercentage > focusedAbove:
		return models.Focused
	case focusPercentage > productiveAbove:
		return models.Productive
	case focusPercentage > distractedAbove:
		return models.Distracted
	default:
		return models.Frustrated
	}
}

package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/solosprint/sprint/internal/models"
)

// FallbackReflection is shown when no reflection could be generated.
const FallbackReflection = "Great work on your focus session! You maintained good concentration and made steady progress."

const reflectSystemPrompt = "You are an empathetic AI assistant that provides emotional reflection and insights based on productivity data. Be encouraging and constructive."

// Reflector writes a short reflection on a finished session.
type Reflector struct {
	llm    Completer
	logger *slog.Logger
}

// NewReflector returns a Reflector backed by llm.
func NewReflector(llm Completer, logger *slog.Logger) *Reflector {
	if logger == nil {
		logger = slog.Default()
	}

	return &Reflector{llm: llm, logger: logger}
}

// Reflect returns a reflection for sess. It never fails.
func (r *Reflector) Reflect(ctx context.Context, sess models.FocusSession) string {
	reply, err := r.llm.Complete(ctx, Prompt{
		System:      reflectSystemPrompt,
		User:        reflectionPrompt(sess),
		Temperature: 0.7,
		MaxTokens:   150,
	})
	if err != nil {
		logFallback(r.logger, "reflect", err)
		return FallbackReflection
	}

	return strings.TrimSpace(reply)
}

func reflectionPrompt(sess models.FocusSession) string {
	return fmt.Sprintf(`Based on this focus session data, provide a brief emotional reflection and one actionable recommendation:

Focus Percentage: %d%%
Distraction Percentage: %d%%
Tab Switches: %d
Duration: %d minutes
Emotional State: %s

Keep the response under 100 words and be encouraging.`,
		sess.FocusPercentage,
		sess.DistractionPercentage,
		sess.TabSwitches,
		sess.DurationMinutes,
		sess.EmotionalState,
	)
}

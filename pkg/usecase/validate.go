package usecase

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/m-mizutani/docdive/pkg/domain/model"
	"github.com/m-mizutani/docdive/pkg/utils/logging"
)

const (
	// confidencePattern marks a verdict from the regexp stage.
	confidencePattern = 0.8
	// confidenceClassifier marks a verdict confirmed by the classifier.
	confidenceClassifier = 0.95
	// confidenceHeuristicOnly marks a pass where only the cheap stage ran.
	confidenceHeuristicOnly = 0.7

	// classifierExcerptLen bounds how much text is sent to the classifier.
	classifierExcerptLen = 1000
)

type dangerSignature struct {
	re     *regexp.Regexp
	reason string
}

var dangerSignatures = []dangerSignature{
	{regexp.MustCompile(`(?i)ignore\s+(all\s+|any\s+)?(previous|prior|above|earlier)\s+instructions`), "instruction override attempt"},
	{regexp.MustCompile(`(?i)disregard\s+(all\s+|any\s+)?(previous|prior|above|earlier)\s+(instructions|rules|prompts)`), "instruction override attempt"},
	{regexp.MustCompile(`(?i)forget\s+(everything|all\s+your\s+instructions|your\s+instructions)`), "instruction override attempt"},
	{regexp.MustCompile(`(?i)you\s+are\s+now\s+(a|an|the)\b`), "role hijack attempt"},
	{regexp.MustCompile(`(?i)(reveal|show|print|repeat)[^\n]{0,40}system\s+prompt`), "system prompt probing"},
	{regexp.MustCompile(`(?i)\b(eval|exec)\s*\(`), "dynamic code execution"},
	{regexp.MustCompile(`(?i)child_process|subprocess\.(run|call|Popen)|os\.system\s*\(`), "process spawning"},
	{regexp.MustCompile(`(?i)rm\s+-rf\s+[/~]`), "destructive shell command"},
	{regexp.MustCompile(`(?i)curl\s+[^\n|]*\|\s*(ba|z)?sh`), "piped remote script execution"},
	{regexp.MustCompile(`(?i)(exfiltrate|upload)[^\n]{0,40}(credential|secret|token|api\s*key)`), "credential exfiltration"},
}

// ValidateContent screens untrusted text before it is surfaced downstream.
// Two tiers, fail-open: the pattern stage is the enforceable floor and
// short-circuits on a hit; the classifier stage only raises confidence and
// its unavailability never blocks content that the patterns did not flag.
func (x *UseCase) ValidateContent(ctx context.Context, content string) *model.ValidationResult {
	for _, sig := range dangerSignatures {
		if sig.re.MatchString(content) {
			return &model.ValidationResult{
				Safe:       false,
				Reason:     sig.reason,
				Confidence: confidencePattern,
			}
		}
	}

	if classifier := x.clients.Classifier(); classifier != nil {
		excerpt := content
		if runes := []rune(excerpt); len(runes) > classifierExcerptLen {
			excerpt = string(runes[:classifierExcerptLen])
		}

		judgment, err := classifier.Classify(ctx, excerpt)
		if err == nil && judgment != nil {
			return &model.ValidationResult{
				Safe:       judgment.Safe,
				Reason:     judgment.Reason,
				Confidence: confidenceClassifier,
			}
		}
		logging.From(ctx).Warn("classifier stage unavailable, using heuristic verdict",
			slog.Any("error", err),
		)
	}

	return &model.ValidationResult{
		Safe:       true,
		Confidence: confidenceHeuristicOnly,
	}
}

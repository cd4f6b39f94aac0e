// Package punktlog provides the structured logger the trainer and
// sentence tokenizer use for optional diagnostic output, wrapping
// go.uber.org/zap the same way the rest of this module's ambient
// tooling follows its retrieved sibling projects.
package punktlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a development-mode logger: human-readable console output
// at debug level, suitable for a library whose diagnostics are mostly
// consulted interactively while tuning a Parameter Set against a
// corpus. Callers that want production JSON output should build their
// own zap.Logger and pass it to Trainer.SetLogger or
// Tokenizer.SetLogger.
func New() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level.SetLevel(zapcore.DebugLevel)
	return cfg.Build()
}

// Noop returns a logger that discards everything, for callers who
// don't want training or tokenization diagnostics but still need to
// satisfy a *zap.Logger parameter.
func Noop() *zap.Logger {
	return zap.NewNop()
}

// TrainingFields builds the structured fields logged after a training
// pass completes.
func TrainingFields(docLen, numAbbreviations, numCollocations, numSentenceStarters int) []zap.Field {
	return []zap.Field{
		zap.Int("doc_bytes", docLen),
		zap.Int("abbreviations", numAbbreviations),
		zap.Int("collocations", numCollocations),
		zap.Int("sentence_starters", numSentenceStarters),
	}
}

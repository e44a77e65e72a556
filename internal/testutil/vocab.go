package testutil

import (
	"nba-chat-service/internal/lexicon"
	"nba-chat-service/internal/nlq"
	"nba-chat-service/internal/resolve"
	"nba-chat-service/internal/store"
)

// Default similarity floors mirroring the config defaults.
const (
	DefaultNameThreshold   = 0.78
	DefaultMetricThreshold = 0.75
)

// NewSnapshot builds a resolver snapshot from the built-in vocabulary.
func NewSnapshot() *store.Snapshot {
	aliases, lex := lexicon.Defaults()
	return &store.Snapshot{
		Resolvers: resolve.Build(aliases, lex, resolve.Thresholds{
			Name:   DefaultNameThreshold,
			Metric: DefaultMetricThreshold,
		}),
		Classifier: nlq.NewClassifier(aliases, lex),
	}
}

// NewResolverStore returns a store preloaded with the built-in vocabulary.
func NewResolverStore() *store.ResolverStore {
	s := store.NewResolverStore()
	s.SetSnapshot(NewSnapshot())
	return s
}

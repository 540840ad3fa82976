package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const shortTermKey = "memory:short_term"

// maximum exchanges kept in the short term window
const shortTermWindow = 50

// ShortTermStore keeps the most recent exchanges in Redis with a TTL.
// Recall is keyword overlap against the stored query, recency wins ties.
type ShortTermStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewShortTermStore(client *redis.Client, ttl time.Duration) *ShortTermStore {
	return &ShortTermStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *ShortTermStore) Save(ctx context.Context, record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("Failed to serialize memory record. Error: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, shortTermKey, data)
	pipe.LTrim(ctx, shortTermKey, 0, shortTermWindow-1)
	pipe.Expire(ctx, shortTermKey, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("Failed to save short term memory. Error: %w", err)
	}

	return nil
}

func (s *ShortTermStore) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	raw, err := s.client.LRange(ctx, shortTermKey, 0, shortTermWindow-1).Result()
	if err != nil {
		return nil, fmt.Errorf("Failed to read short term memory. Error: %w", err)
	}

	var hits []Hit
	for _, item := range raw {
		var record Record
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			log.Warn().Err(err).Msg("Skipping malformed memory record")
			continue
		}

		score := OverlapScore(query, record.Query)
		if score == 0.0 {
			continue
		}

		hits = append(hits, Hit{Record: record, Score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	return hits, nil
}

// OverlapScore is the ratio of unique query terms found in the candidate text.
func OverlapScore(query string, candidate string) float64 {
	queryTokens := extractUniqueTokens(tokenize(query))
	candidateTokens := extractUniqueTokens(tokenize(candidate))

	if len(queryTokens) == 0 {
		return 0.0
	}

	count := 0
	for token := range queryTokens {
		if _, exists := candidateTokens[token]; exists {
			count++
		}
	}

	return float64(count) / float64(len(queryTokens))
}

func extractUniqueTokens(tokens []string) map[string]bool {
	unique := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		unique[t] = true
	}
	return unique
}

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"of": true, "at": true, "by": true, "for": true, "with": true,
	"about": true, "against": true, "between": true, "into": true,
	"through": true, "during": true, "before": true, "after": true,
	"to": true, "from": true, "in": true, "on": true,
}

func tokenize(s string) []string {
	s = strings.ToLower(s)
	s = removePunctuation(s)

	tokens := []string{}
	for word := range strings.FieldsSeq(s) {
		if !stopWords[word] && len(word) > 1 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func removePunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(".,!?;:()[]{}\"'", r) {
			return -1 // Remove this rune
		}
		return r
	}, s)
}

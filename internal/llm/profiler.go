package llm

import (
	"context"
	"strconv"
	"time"

	"github.com/dileep-u-k/restaurant-chatbot/internal/api"
	"github.com/dileep-u-k/restaurant-chatbot/internal/version"

	"github.com/phuslu/log"
	"github.com/redis/go-redis/v9"
)

const (
	statsPrefix        = "stats"
	latencyAlpha       = 0.1
	defaultStatsBudget = 500 * time.Millisecond
)

// ModelStats is the usage record kept for one model.
type ModelStats struct {
	ModelID           string
	AvgLatencyMS      int64
	TotalSuccesses    int64
	TotalFailures     int64
	TotalInputTokens  int64
	TotalOutputTokens int64
	ErrorRate         float64
	LastFailure       time.Time
}

// Profiler keeps usage statistics in Redis: per model call outcomes and
// latency, and per answer which source and tool produced it. Write failures
// are logged and never reach the caller. A nil *Profiler records nothing.
type Profiler struct {
	rdb    *redis.Client
	logger *log.Logger
	budget time.Duration
}

func NewProfiler(rdb *redis.Client, logger *log.Logger) *Profiler {
	return &Profiler{rdb: rdb, logger: logger, budget: defaultStatsBudget}
}

func (p *Profiler) modelKey(modelID string) string {
	return version.GenerateVersionedKey(statsPrefix, "model:"+modelID)
}

func (p *Profiler) answersKey() string {
	return version.GenerateVersionedKey(statsPrefix, "answers")
}

// withBudget bounds a stats write so a slow or absent Redis cannot hold up a reply.
func (p *Profiler) withBudget(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), p.budget)
}

// GetModelStats reads the stored record for modelID. Missing fields read as zero.
func (p *Profiler) GetModelStats(ctx context.Context, modelID string) (*ModelStats, error) {
	data, err := p.rdb.HGetAll(ctx, p.modelKey(modelID)).Result()
	if err != nil {
		return nil, err
	}

	stats := &ModelStats{ModelID: modelID}
	stats.AvgLatencyMS, _ = strconv.ParseInt(data["avg_latency_ms"], 10, 64)
	stats.TotalSuccesses, _ = strconv.ParseInt(data["total_successes"], 10, 64)
	stats.TotalFailures, _ = strconv.ParseInt(data["total_failures"], 10, 64)
	stats.TotalInputTokens, _ = strconv.ParseInt(data["total_input_tokens"], 10, 64)
	stats.TotalOutputTokens, _ = strconv.ParseInt(data["total_output_tokens"], 10, 64)
	stats.ErrorRate, _ = strconv.ParseFloat(data["error_rate"], 64)
	stats.LastFailure, _ = time.Parse(time.RFC3339Nano, data["last_failure"])
	return stats, nil
}

// RecordModelSuccess folds the call's latency into the moving average and
// adds its token usage.
func (p *Profiler) RecordModelSuccess(ctx context.Context, modelID string, latency time.Duration, usage api.Usage) {
	if p == nil {
		return
	}
	ctx, cancel := p.withBudget(ctx)
	defer cancel()
	key := p.modelKey(modelID)

	err := p.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, "avg_latency_ms").Result()
		if err != nil && err != redis.Nil {
			return err
		}
		avg := latency.Milliseconds()
		if currentMS, perr := strconv.ParseInt(current, 10, 64); perr == nil {
			avg = int64(latencyAlpha*float64(latency.Milliseconds()) + (1.0-latencyAlpha)*float64(currentMS))
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "avg_latency_ms", avg)
			return nil
		})
		return err
	}, key)
	if err != nil {
		p.logger.Warn().Err(err).Str("model", modelID).Msg("failed to update model latency")
		return
	}

	pipe := p.rdb.Pipeline()
	successes := pipe.HIncrBy(ctx, key, "total_successes", 1)
	failures := pipe.HGet(ctx, key, "total_failures")
	pipe.HIncrBy(ctx, key, "total_input_tokens", int64(usage.PromptTokens))
	pipe.HIncrBy(ctx, key, "total_output_tokens", int64(usage.CompletionTokens))
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		p.logger.Warn().Err(err).Str("model", modelID).Msg("failed to record model success")
		return
	}

	totalFailures, _ := strconv.ParseInt(failures.Val(), 10, 64)
	p.updateErrorRate(ctx, key, successes.Val(), totalFailures)
}

// RecordModelFailure counts a failed call.
func (p *Profiler) RecordModelFailure(ctx context.Context, modelID string) {
	if p == nil {
		return
	}
	ctx, cancel := p.withBudget(ctx)
	defer cancel()
	key := p.modelKey(modelID)

	pipe := p.rdb.Pipeline()
	failures := pipe.HIncrBy(ctx, key, "total_failures", 1)
	successes := pipe.HGet(ctx, key, "total_successes")
	pipe.HSet(ctx, key, "last_failure", time.Now().Format(time.RFC3339Nano))
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		p.logger.Warn().Err(err).Str("model", modelID).Msg("failed to record model failure")
		return
	}

	totalSuccesses, _ := strconv.ParseInt(successes.Val(), 10, 64)
	p.updateErrorRate(ctx, key, totalSuccesses, failures.Val())
}

// RecordAnswer counts one answer by source, and by tool name for tool answers.
func (p *Profiler) RecordAnswer(ctx context.Context, source api.Source, toolName string) {
	if p == nil {
		return
	}
	ctx, cancel := p.withBudget(ctx)
	defer cancel()
	key := p.answersKey()

	pipe := p.rdb.Pipeline()
	pipe.HIncrBy(ctx, key, "source:"+string(source), 1)
	if toolName != "" {
		pipe.HIncrBy(ctx, key, "tool:"+toolName, 1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		p.logger.Warn().Err(err).Str("source", string(source)).Msg("failed to record answer")
	}
}

func (p *Profiler) updateErrorRate(ctx context.Context, key string, successes, failures int64) {
	total := successes + failures
	if total == 0 {
		return
	}
	if err := p.rdb.HSet(ctx, key, "error_rate", float64(failures)/float64(total)).Err(); err != nil {
		p.logger.Warn().Err(err).Str("key", key).Msg("failed to update error rate")
	}
}

package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-insight/models"
)

func TestTryEachFirstSuccessWins(t *testing.T) {
	var attempts []string
	result, err := tryEach(context.Background(), []string{"m1", "m2", "m3"}, time.Second,
		func(_ context.Context, name string) (string, error) {
			attempts = append(attempts, name)
			if name == "m2" {
				return "ok from m2", nil
			}
			return "", fmt.Errorf("%s unavailable", name)
		})

	require.NoError(t, err)
	assert.Equal(t, "ok from m2", result)
	assert.Equal(t, []string{"m1", "m2"}, attempts)
}

func TestTryEachReturnsLastError(t *testing.T) {
	_, err := tryEach(context.Background(), []string{"m1", "m2"}, time.Second,
		func(_ context.Context, name string) (string, error) {
			return "", fmt.Errorf("%s failed", name)
		})
	require.Error(t, err)
	assert.Equal(t, "m2 failed", err.Error())
}

func TestTryEachNoCandidates(t *testing.T) {
	_, err := tryEach(context.Background(), nil, time.Second,
		func(_ context.Context, name string) (string, error) { return name, nil })
	assert.Error(t, err)
}

func TestTryEachStopsWhenParentContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	_, err := tryEach(ctx, []string{"m1", "m2", "m3"}, time.Second,
		func(_ context.Context, name string) (string, error) {
			attempts++
			cancel()
			return "", errors.New("boom")
		})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestTryEachAppliesPerAttemptTimeout(t *testing.T) {
	_, err := tryEach(context.Background(), []string{"slow"}, 10*time.Millisecond,
		func(attemptCtx context.Context, _ string) (string, error) {
			<-attemptCtx.Done()
			return "", attemptCtx.Err()
		})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON(`Sure, here you go: {"a":1} hope that helps`))
	assert.Equal(t, "", extractJSON("no json here"))
}

func TestParseDecisionReport(t *testing.T) {
	raw := "Here is the analysis:\n```json\n" +
		`{"decisions":[{"product":"LG Fridge X","decision":"main-stock","stage":"mature","reason":"steady volume","action":"keep 5 in stock"}],"summary":"Healthy core assortment."}` +
		"\n```"

	report, err := parseDecisionReport(raw)
	require.NoError(t, err)
	require.Len(t, report.Decisions, 1)
	assert.Equal(t, models.DecisionMainStock, report.Decisions[0].Decision)
	assert.Equal(t, models.StageMature, report.Decisions[0].Stage)
	assert.Equal(t, "Healthy core assortment.", report.Summary)
}

func TestParseDecisionReportNormalizesTags(t *testing.T) {
	raw := `{"decisions":[{"product":"a","decision":"Main Stock!!","stage":"GROWTH"}],"summary":"s"}`
	report, err := parseDecisionReport(raw)
	require.NoError(t, err)
	// Improvised decision tags fold onto the watch-list default; valid tags
	// survive case folding.
	assert.Equal(t, models.DecisionWatchList, report.Decisions[0].Decision)
	assert.Equal(t, models.StageGrowth, report.Decisions[0].Stage)
}

func TestParseDecisionReportRejectsGarbage(t *testing.T) {
	_, err := parseDecisionReport("the model refused to answer")
	assert.Error(t, err)
}

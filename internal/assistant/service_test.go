package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigamist7/Bigamist-TaskPal/domain"
)

type stubGenerator struct {
	reply    string
	err      error
	requests []Request
}

func (g *stubGenerator) Generate(_ context.Context, req Request) (string, error) {
	g.requests = append(g.requests, req)
	return g.reply, g.err
}

type recordingReporter struct {
	reports []bool
}

func (r *recordingReporter) ReportUpstream(ok bool) {
	r.reports = append(r.reports, ok)
}

func TestRespondPassesConversationContext(t *testing.T) {
	gen := &stubGenerator{reply: "sure thing"}
	svc := NewService(gen, nil, 0, nil)
	ctx := context.Background()

	first := svc.Respond(ctx, "hello", domain.PersonalityZen, nil, domain.TaskStats{})
	assert.Equal(t, "sure thing", first)

	svc.Respond(ctx, "and now?", domain.PersonalityZen, nil, domain.TaskStats{})

	require.Len(t, gen.requests, 2)
	followUp := gen.requests[1]
	assert.Equal(t, "and now?", followUp.Message)
	assert.Equal(t, domain.PersonalityZen, followUp.Personality)
	assert.Contains(t, followUp.Context, "User: hello")
	assert.Contains(t, followUp.Context, "Assistant: sure thing")
}

func TestRespondReportsUpstreamOutcome(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	reporter := &recordingReporter{}
	svc := NewService(gen, reporter, 0, nil)

	svc.Respond(context.Background(), "hi", domain.PersonalityMotivational, nil, domain.TaskStats{})
	gen.err = errors.New("boom")
	svc.Respond(context.Background(), "hi again", domain.PersonalityMotivational, nil, domain.TaskStats{})

	assert.Equal(t, []bool{true, false}, reporter.reports)
}

func TestRespondFallsBackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	svc := NewService(gen, nil, 0, nil)

	reply := svc.Respond(context.Background(), "hi", domain.PersonalityZen, nil, domain.TaskStats{})
	assert.Equal(t, fallbackReplies[domain.PersonalityZen], reply)

	// A failed attempt leaves no assistant line in the conversation.
	svc.Respond(context.Background(), "again", domain.PersonalityZen, nil, domain.TaskStats{})
	require.Len(t, gen.requests, 2)
	assert.NotContains(t, gen.requests[1].Context, "Assistant:")
}

func TestRespondTimeoutYieldsTimeoutFallback(t *testing.T) {
	gen := &stubGenerator{err: context.DeadlineExceeded}
	svc := NewService(gen, nil, time.Millisecond, nil)

	reply := svc.Respond(context.Background(), "hi", domain.PersonalityProfessional, nil, domain.TaskStats{})
	assert.Contains(t, reply, "taking too long")
}

func TestHistoryIsBoundedAndClearable(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	svc := NewService(gen, nil, 0, nil)
	ctx := context.Background()

	for i := 0; i < historyLimit; i++ {
		svc.Respond(ctx, "message", domain.PersonalityPlayful, nil, domain.TaskStats{})
	}

	last := gen.requests[len(gen.requests)-1]
	lines := strings.Split(last.Context, "\n")
	assert.LessOrEqual(t, len(lines), historyLimit)

	svc.ClearHistory()
	svc.Respond(ctx, "fresh start", domain.PersonalityPlayful, nil, domain.TaskStats{})
	assert.Equal(t, "User: fresh start", gen.requests[len(gen.requests)-1].Context)
}

func TestFallbackClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want failureClass
	}{
		{"nil", nil, failureGeneric},
		{"deadline sentinel", context.DeadlineExceeded, failureTimeout},
		{"key message", errors.New("401 unauthorized: invalid API key"), failureKey},
		{"timeout message", errors.New("request timeout exceeded"), failureTimeout},
		{"network message", errors.New("dial tcp: no such host"), failureNetwork},
		{"anything else", errors.New("boom"), failureGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestFallbackReplyUnknownPersonality(t *testing.T) {
	reply := fallbackReply(domain.Personality("alien"), errors.New("boom"))
	assert.Equal(t, fallbackReplies[domain.PersonalityMotivational], reply)
}

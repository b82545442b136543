package pet

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hoshinoya/dogepet/internal/ai"
	"github.com/hoshinoya/dogepet/internal/models"
	"github.com/hoshinoya/dogepet/internal/search"
)

const systemPrompt = "You are Desktop Doge. Answer very briefly (≤25 words) and append one mood tag " +
	"<mood:HAPPY|LAUGH|WOW|SAD|THINK>."

// fallbackReply is shown when the completion service fails; the pet must
// never stay stuck in thinking.
const fallbackReply = "No thoughts right now. Much retry later."

// PriceSource is the read-through price cache boundary.
type PriceSource interface {
	Snippet(ctx context.Context, force bool) string
}

// CredentialGate ensures a completion credential exists, prompting the
// user synchronously when it does not. false means the user cancelled.
type CredentialGate interface {
	Ensure() bool
}

// Pipeline runs one conversation attempt at a time: credential check,
// input bubble, background enrichment and completion, then render. The
// busy lock is the process-wide single-flight guard; it is held from
// initiation until the reply (or failure) has been rendered, and released
// on every exit path.
type Pipeline struct {
	busy sync.Mutex

	session *Session
	anim    *Animator
	bubbles *BubbleManager
	input   *InputSession
	creds   CredentialGate
	search  search.Provider
	price   PriceSource
	chat    ai.Completer

	// post hands a closure to the runtime goroutine; it is the only way
	// worker results touch UI-owned state.
	post   func(func())
	anchor func() models.Frame
	log    *zerolog.Logger
}

type PipelineDeps struct {
	Session     *Session
	Animator    *Animator
	Bubbles     *BubbleManager
	Input       *InputSession
	Credentials CredentialGate
	Search      search.Provider
	Price       PriceSource
	Completer   ai.Completer
	Post        func(func())
	Anchor      func() models.Frame
	Log         *zerolog.Logger
}

func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		session: deps.Session,
		anim:    deps.Animator,
		bubbles: deps.Bubbles,
		input:   deps.Input,
		creds:   deps.Credentials,
		search:  deps.Search,
		price:   deps.Price,
		chat:    deps.Completer,
		post:    deps.Post,
		anchor:  deps.Anchor,
		log:     deps.Log,
	}
}

// Initiate starts a conversation attempt. Without a credential the user is
// prompted first; cancellation aborts with no side effects. While another
// attempt is in flight the request is silently dropped - at most one
// concurrent session, never queued.
func (p *Pipeline) Initiate() {
	if !p.creds.Ensure() {
		p.log.Info().Msg("chat aborted: no credential")
		return
	}
	if !p.busy.TryLock() {
		p.log.Debug().Msg("chat request dropped: session in flight")
		return
	}
	if !p.input.Open(p.anchor(), p.send, p.release) {
		p.busy.Unlock()
	}
}

// release is the abort path for an input bubble dismissed without a send.
func (p *Pipeline) release() {
	p.busy.Unlock()
}

// send runs on the runtime goroutine when the user submits text. The
// history snapshot is taken here, before the worker starts, so the worker
// never reads session state.
func (p *Pipeline) send(text string) {
	p.session.Append(ai.RoleUser, text)
	p.anim.SetState(StateThinking)
	history := p.session.Window()
	go p.work(text, history)
}

// work is the background unit: best-effort enrichment, one completion
// call, then a hand-off back to the runtime goroutine.
func (p *Pipeline) work(text string, history []ai.Message) {
	ctx := context.Background()

	snippet := p.search.Query(ctx, text)

	intent := PriceIntent(text)
	var priceFact string
	if intent {
		priceFact = p.price.Snippet(ctx, false)
	}

	reply, err := p.chat.Complete(ctx, BuildMessages(history, priceFact, intent, snippet))
	p.post(func() { p.finish(reply, err) })
}

// finish renders the outcome on the runtime goroutine and releases the
// single-flight lock whatever happened.
func (p *Pipeline) finish(reply string, err error) {
	defer p.busy.Unlock()

	if err != nil {
		p.log.Warn().Err(err).Msg("completion failed")
		p.anim.SetState(StateIdle)
		p.bubbles.Create(models.BubbleChat, fallbackReply, p.anchor())
		return
	}

	text, mood := ParseMood(strings.TrimSpace(reply))
	p.session.Append(ai.RoleAssistant, text)
	p.bubbles.Create(models.BubbleChat, text, p.anchor())
	p.anim.SetState(mood)
}

// BuildMessages assembles the outbound list: system instruction, optional
// live-price fact with its citation instruction, optional web snippet,
// then the trailing history window.
func BuildMessages(history []ai.Message, priceFact string, priceIntent bool, webSnippet string) []ai.Message {
	msgs := []ai.Message{{Role: ai.RoleSystem, Content: systemPrompt}}

	if priceFact != "" {
		instruction := "You MUST quote that number."
		if !priceIntent {
			instruction = "Use the number only if the user asked for price/market info."
		}
		msgs = append(msgs, ai.Message{
			Role:    ai.RoleUser,
			Content: "(live-data) " + priceFact + "\n" + instruction,
		})
	}

	if webSnippet != "" {
		msgs = append(msgs, ai.Message{
			Role:    ai.RoleUser,
			Content: "(web) " + webSnippet,
		})
	}

	return append(msgs, history...)
}

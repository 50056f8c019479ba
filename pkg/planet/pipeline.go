// Package planet turns a flat texture into a planet image by running the
// stdimg stages in order and reporting progress along the way.
package planet

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Fepozopo/spherize/pkg/stdimg"
)

// Result is the outcome of a successful run.
type Result struct {
	Image *image.NRGBA
	// BrightnessLoss is mean value after the shadow over mean value before.
	// It is 1 when the shadow stage was skipped.
	BrightnessLoss float64
	Stages         []State
}

// Pipeline runs the stages under a fixed Config. It holds no image state
// between runs, so one Pipeline may serve concurrent runs.
type Pipeline struct {
	cfg    Config
	log    zerolog.Logger
	loader Loader
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithLoader sets how RunFile and Start read their input.
func WithLoader(l Loader) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.loader = l
		}
	}
}

func New(cfg Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		log:    zerolog.Nop(),
		loader: LoaderFunc(decodeFile),
	}
	for _, o := range opts {
		o(p)
	}
	p.log = p.log.With().Str("component", "planet").Logger()
	return p
}

// Run processes an already decoded image. name is only used in the opening
// progress message. notify may be nil.
func (p *Pipeline) Run(name string, src image.Image, notify func(Event)) (*Result, error) {
	return p.run(name, func() (image.Image, error) { return src, nil }, notify)
}

// RunFile loads path through the pipeline's Loader and processes it.
func (p *Pipeline) RunFile(path string, notify func(Event)) (*Result, error) {
	return p.run(filepath.Base(path), func() (image.Image, error) { return p.loader.Load(path) }, notify)
}

// Start runs RunFile on its own goroutine. Events arrive in stage order and
// the channel is closed after the terminal event.
func (p *Pipeline) Start(path string) <-chan Event {
	// large enough for every event of a run, so the worker never blocks
	ch := make(chan Event, int(StateFailed)+1)
	go func() {
		defer close(ch)
		p.RunFile(path, func(ev Event) { ch <- ev })
	}()
	return ch
}

type runState struct {
	p      *Pipeline
	notify func(Event)
	stages []State
}

func (r *runState) enter(s State, msg string, img *image.NRGBA) {
	r.stages = append(r.stages, s)
	ev := r.p.log.Debug().Str("stage", s.String())
	if img != nil {
		ev = ev.Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy())
	}
	ev.Msg(msg)
	if r.notify != nil {
		r.notify(Event{State: s, Message: msg})
	}
}

func (r *runState) fail(state State, err error) (*Result, error) {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: classify(state, err), State: state, Err: err}
	}
	r.stages = append(r.stages, StateFailed)
	r.p.log.Error().Err(e).Str("stage", state.String()).Msg("pipeline failed")
	if r.notify != nil {
		r.notify(Event{State: StateFailed, Message: fmt.Sprintf(msgFailed, e), Err: e})
	}
	return nil, e
}

func (p *Pipeline) run(name string, load func() (image.Image, error), notify func(Event)) (*Result, error) {
	r := &runState{p: p, notify: notify}
	cfg := p.cfg
	if err := cfg.Validate(); err != nil {
		return r.fail(StateIdle, err)
	}

	r.enter(StateLoading, fmt.Sprintf(msgOpening, name), nil)
	src, err := load()
	if err != nil {
		return r.fail(StateLoading, err)
	}
	if src == nil {
		return r.fail(StateLoading, fmt.Errorf("no image decoded from %s", name))
	}
	cur := stdimg.ToNRGBA(src)
	if cur.Bounds().Empty() {
		return r.fail(StateLoading, fmt.Errorf("%s has no pixels", name))
	}

	if cfg.ApplySpherization {
		r.enter(StateDistorting, msgDistorting, cur)
		if cur, err = stdimg.Spherize(cur, cfg.K1, cfg.K2); err != nil {
			return r.fail(StateDistorting, fmt.Errorf("black border trim: %w", err))
		}
	}

	r.enter(StateMasking, msgMasking, cur)
	b := cur.Bounds()
	if cur, err = stdimg.MaskCircle(cur, stdimg.DefaultCircle(b.Dx(), b.Dy(), cfg.Center, cfg.Radius)); err != nil {
		return r.fail(StateMasking, err)
	}

	loss := 1.0
	if cfg.ApplyShadow {
		r.enter(StateShading, msgShading, cur)
		cur, loss = stdimg.AddShadow(cur)
		p.log.Debug().Float64("brightness_loss", loss).Msg("shadow applied")
	}

	if cfg.Brightness != 1.0 {
		r.enter(StateBrightening, msgBrighten, cur)
		cur = stdimg.AdjustBrightness(cur, cfg.Brightness)
	}

	r.stages = append(r.stages, StateDone)
	p.log.Debug().Str("stage", StateDone.String()).
		Int("width", cur.Bounds().Dx()).Int("height", cur.Bounds().Dy()).Msg(msgDone)
	if notify != nil {
		notify(Event{State: StateDone, Message: msgDone, Image: cur, BrightnessLoss: loss})
	}
	return &Result{Image: cur, BrightnessLoss: loss, Stages: r.stages}, nil
}

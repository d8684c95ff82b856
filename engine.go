package gocrc

import (
	"sync"

	"github.com/pkg/errors"
)

// Engine is a running CRC computation: a fixed Rocksoft/CRC-catalogue
// configuration plus the mutable accumulator Update folds bytes into. An
// Engine is safe for concurrent use; every exported method that reads or
// changes the accumulator takes its mutex, and Update releases and
// re-acquires it every LongJobThreshold bytes so one very large call
// doesn't starve other callers of the same Engine. The configuration
// accessors (Width, Poly, Init, RefIn, RefOut, XorOut, Name,
// UsedForSecurity, CurrentMethod, Params) do not take the mutex; they read
// fields that New sets and nothing changes afterwards.
type Engine struct {
	mu sync.Mutex

	width  uint8
	refin  bool
	refout bool

	poly   uint64 // internalized
	init   uint64 // internalized
	xorout uint64 // external, applied only at digest time

	accum  uint64
	result uint64
	dirty  bool

	method   Method
	bytewise *[256]uint64
	wordwise *[tableSliceCount * tableByteCount]uint64

	name            string
	usedForSecurity bool
	log             internalLogger
}

// engineConfig accumulates the Options passed to New before they are
// resolved into a Params and an Engine.
type engineConfig struct {
	name    string
	hasName bool

	width    uint8
	hasWidth bool
	poly     uint64
	hasPoly  bool
	init     uint64
	hasInit  bool
	refin    bool
	hasRefIn bool
	refout   bool
	hasRefOut bool
	xorout   uint64
	hasXorOut bool

	method    Method
	hasMethod bool

	data            []byte
	usedForSecurity bool

	logger AdvancedLogger
	level  LogLevel
}

// Option configures a New Engine.
type Option func(*engineConfig)

// WithName selects a catalogue or alias name, e.g. "crc-32" or "xmodem",
// as the base configuration. Other With* options layered after it
// override individual fields of the catalogue entry.
func WithName(name string) Option {
	return func(c *engineConfig) { c.name, c.hasName = name, true }
}

// WithWidth sets the register width in bits, from 1 to MaxWidth.
func WithWidth(width uint8) Option {
	return func(c *engineConfig) { c.width, c.hasWidth = width, true }
}

// WithPoly sets the generator polynomial, in normal (non-reflected) form.
func WithPoly(poly uint64) Option {
	return func(c *engineConfig) { c.poly, c.hasPoly = poly, true }
}

// WithInit sets the nominal initial register value.
func WithInit(init uint64) Option {
	return func(c *engineConfig) { c.init, c.hasInit = init, true }
}

// WithRefIn sets whether each input byte is bit-reflected before it is
// folded into the register.
func WithRefIn(refin bool) Option {
	return func(c *engineConfig) { c.refin, c.hasRefIn = refin, true }
}

// WithRefOut sets whether the register is bit-reflected before XorOut is
// applied.
func WithRefOut(refout bool) Option {
	return func(c *engineConfig) { c.refout, c.hasRefOut = refout, true }
}

// WithXorOut sets the mask XORed into the register to produce the digest.
func WithXorOut(xorout uint64) Option {
	return func(c *engineConfig) { c.xorout, c.hasXorOut = xorout, true }
}

// WithMethod selects the update kernel. The default is MethodWordwise.
func WithMethod(method Method) Option {
	return func(c *engineConfig) { c.method, c.hasMethod = method, true }
}

// WithData feeds data into the Engine immediately after construction,
// before New returns it.
func WithData(data []byte) Option {
	return func(c *engineConfig) { c.data = data }
}

// WithUsedForSecurity records the caller's intent that this digest is used
// as a security measure rather than an error-detecting checksum. CRC is
// not a cryptographic primitive either way; this option exists only so
// callers porting code that set the equivalent flag have somewhere to put
// it, and it does not change how the Engine computes anything.
func WithUsedForSecurity(usedForSecurity bool) Option {
	return func(c *engineConfig) { c.usedForSecurity = usedForSecurity }
}

// WithLogger attaches a structured logger. See AdvancedLogger and the
// gocrczerolog / gocrczap extension packages.
func WithLogger(logger AdvancedLogger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithLogLevel sets the minimum level the attached logger receives.
func WithLogLevel(level LogLevel) Option {
	return func(c *engineConfig) { c.level = level }
}

// New builds an Engine from Options. With no name or explicit width/poly,
// it builds the default catalogue entry ("crc-32"). A name supplies a base
// Params that later With* options may override field by field.
func New(opts ...Option) (*Engine, error) {
	cfg := engineConfig{level: LogLevelWarn}
	for _, opt := range opts {
		opt(&cfg)
	}

	var params Params
	switch {
	case cfg.hasName:
		p, err := Lookup(cfg.name)
		if err != nil {
			return nil, errors.Wrap(err, "resolving catalogue name")
		}
		params = p
	case !cfg.hasWidth && !cfg.hasPoly:
		p, err := Lookup(defaultName)
		if err != nil {
			return nil, errors.Wrap(err, "resolving default catalogue entry")
		}
		params = p
		cfg.name, cfg.hasName = defaultName, true
	}

	if cfg.hasWidth {
		params.Width = cfg.width
	}
	if cfg.hasPoly {
		params.Poly = cfg.poly
	}
	if cfg.hasInit {
		params.Init = cfg.init
	}
	if cfg.hasRefIn {
		params.RefIn = cfg.refin
	}
	if cfg.hasRefOut {
		params.RefOut = cfg.refout
	}
	if cfg.hasXorOut {
		params.XorOut = cfg.xorout
	}

	if err := params.validate(); err != nil {
		return nil, errors.Wrap(err, "validating CRC parameters")
	}

	method := MethodWordwise
	if cfg.hasMethod {
		method = cfg.method
	}

	name := ""
	if cfg.hasName {
		name = cfg.name
	}

	e := &Engine{
		width:           params.Width,
		refin:           params.RefIn,
		refout:          params.RefOut,
		xorout:          params.XorOut,
		name:            name,
		usedForSecurity: cfg.usedForSecurity,
		method:          method,
		log:             newInternalLogger(cfg.logger, cfg.level),
	}
	e.poly = e.internalize(params.Poly)
	e.init = e.internalize(params.Init)
	e.accum = e.init
	e.result = params.Init
	e.dirty = false

	switch method {
	case MethodBytewise:
		e.bytewise = globalTableCache.bytewiseTableFor(e.width, e.poly, e.refin)
	case MethodWordwise:
		e.bytewise, e.wordwise = globalTableCache.wordwiseTableFor(e.width, e.poly, e.refin)
	}

	e.log.Debug("engine configured",
		NewLogField("name", name),
		NewLogField("width", params.Width),
		NewLogField("method", method.String()))

	if len(cfg.data) > 0 {
		e.Update(cfg.data)
	}

	return e, nil
}

// internalize converts an external (Rocksoft-form) register value into the
// orientation the update kernels keep the accumulator in: bit-reversed,
// LSb-aligned, when RefIn is set, or left-shifted into the top bits of the
// 64-bit register otherwise. Unifying both reflection cases this way lets
// one kernel implementation serve both.
func (e *Engine) internalize(value uint64) uint64 {
	if e.refin {
		return bitSwap(value, e.width)
	}
	return value << (64 - uint(e.width))
}

// externalize undoes internalize.
func (e *Engine) externalize(value uint64) uint64 {
	if e.refin {
		return bitSwap(value, e.width)
	}
	return value >> (64 - uint(e.width))
}

// updateLocked dispatches to the configured kernel. Callers must hold e.mu.
func (e *Engine) updateLocked(data []byte) {
	switch e.method {
	case MethodWordwise:
		e.updateWordwise(data)
	case MethodBytewise:
		e.updateBytewise(data)
	default:
		e.updateBitwise(data)
	}
}

// Update folds data into the accumulator, in chunks of at most
// LongJobThreshold bytes so the mutex is released periodically during a
// very large call.
func (e *Engine) Update(data []byte) {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > LongJobThreshold {
			chunk = chunk[:LongJobThreshold]
		}
		e.mu.Lock()
		e.updateLocked(chunk)
		e.mu.Unlock()
		data = data[len(chunk):]
	}
}

// UpdateWord folds a single value of up to 64 bits, taken from the low
// width bits of word, into the accumulator. It is always computed
// bitwise, since no catalogue table is indexed narrower than a byte.
func (e *Engine) UpdateWord(word uint64, width uint8) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updateWord(word, width)
}

// Width returns the configured register width in bits.
func (e *Engine) Width() uint8 { return e.width }

// Poly returns the generator polynomial in normal (non-reflected) form.
func (e *Engine) Poly() uint64 { return e.externalize(e.poly) }

// Init returns the nominal initial register value.
func (e *Engine) Init() uint64 { return e.externalize(e.init) }

// RefIn reports whether input bytes are bit-reflected.
func (e *Engine) RefIn() bool { return e.refin }

// RefOut reports whether the register is bit-reflected before XorOut.
func (e *Engine) RefOut() bool { return e.refout }

// XorOut returns the mask XORed into the register to produce the digest.
func (e *Engine) XorOut() uint64 { return e.xorout }

// Name returns the catalogue name this Engine was built from, or "" if it
// was built from explicit Params fields instead.
func (e *Engine) Name() string { return e.name }

// UsedForSecurity reports the value passed to WithUsedForSecurity. It has
// no effect on how the digest is computed.
func (e *Engine) UsedForSecurity() bool { return e.usedForSecurity }

// CurrentMethod returns the update kernel this Engine uses.
func (e *Engine) CurrentMethod() Method { return e.method }

// BlockSize is the number of bytes Update consumes per internal step, 1
// for every method: Update accepts input of any length regardless.
func (e *Engine) BlockSize() int { return 1 }

// DigestSize is the number of bytes Digest returns.
func (e *Engine) DigestSize() int { return e.digestSize() }

// Params reconstructs the external Rocksoft/CRC-catalogue tuple this
// Engine was configured from.
func (e *Engine) Params() Params {
	return Params{
		Width:  e.width,
		Poly:   e.externalize(e.poly),
		Init:   e.externalize(e.init),
		RefIn:  e.refin,
		RefOut: e.refout,
		XorOut: e.xorout,
	}
}

// Copy returns a new Engine with the same configuration and accumulator
// state, sharing the same lookup tables. The two Engines evolve
// independently from the point of the copy.
func (e *Engine) Copy() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &Engine{
		width:    e.width,
		refin:    e.refin,
		refout:   e.refout,
		poly:     e.poly,
		init:     e.init,
		xorout:   e.xorout,
		accum:    e.accum,
		result:   e.result,
		dirty:    e.dirty,
		method:   e.method,
		bytewise:        e.bytewise,
		wordwise:        e.wordwise,
		name:            e.name,
		usedForSecurity: e.usedForSecurity,
		log:             e.log,
	}
}

// Clear resets the accumulator to the configured initial value, or, with
// one argument, to the given value instead.
func (e *Engine) Clear(init ...uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(init) == 0 {
		e.accum = e.init
		e.result = e.externalize(e.init)
		e.dirty = false
		return nil
	}
	if len(init) > 1 {
		return &ConfigError{Kind: KindType, Field: "init", Message: "Clear accepts at most one init value"}
	}
	v := init[0]
	if v > bitMask(e.width) {
		return &ConfigError{Kind: KindOverflow, Field: "init", Message: "init out of range"}
	}
	e.result = v
	e.accum = e.internalize(v)
	e.dirty = false
	return nil
}

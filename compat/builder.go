package compat

import (
	"fmt"

	"github.com/lixenwraith/devlog"
)

// Category names used by the adapters
const (
	GnetCategory     = "gnet"
	FastHTTPCategory = "fasthttp"
)

// Builder creates adapters bound to one root, each adapter logging under its own category
type Builder struct {
	root   *devlog.Root
	logCfg *devlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithRoot specifies an existing root to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithRoot(r *devlog.Root) *Builder {
	if r == nil {
		b.err = fmt.Errorf("devlog/compat: provided root cannot be nil")
		return b
	}
	b.root = r
	return b
}

// WithConfig provides a configuration for a new root, used only when no root was given.
// Without either, the process-wide root is used.
func (b *Builder) WithConfig(cfg *devlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getRoot resolves the root to be used, creating one if necessary
func (b *Builder) getRoot() (*devlog.Root, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.root != nil {
		return b.root, nil
	}

	if b.logCfg == nil {
		b.root = devlog.Default()
		return b.root, nil
	}

	r := devlog.NewRoot()
	if err := r.ApplyConfig(b.logCfg); err != nil {
		return nil, err
	}

	// Cache the new root for subsequent builds with this builder
	b.root = r
	return r, nil
}

// BuildGnet creates a gnet adapter logging under the "gnet" category
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	r, err := b.getRoot()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(r.Logger(GnetCategory), opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter logging under the "fasthttp" category
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	r, err := b.getRoot()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(r.Logger(FastHTTPCategory), opts...), nil
}

// GetRoot returns the underlying root, resolving it if needed
func (b *Builder) GetRoot() (*devlog.Root, error) {
	return b.getRoot()
}

// --- Example Usage ---
//
//	root, _ := devlog.NewBuilder().LevelString("info").Build()
//	builder := compat.NewBuilder().WithRoot(root)
//
//	gnetLogger, _ := builder.BuildGnet()
//	handler := compat.NewTimedEventHandler(devlog.NewTimer("traffic").WithLogger(root.Logger("app")), &echo{})
//	go gnet.Run(handler, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//	server := &fasthttp.Server{
//		Handler: compat.TimedHandler(devlog.NewTimer("request"), requestHandler),
//		Logger:  fasthttpLogger,
//	}

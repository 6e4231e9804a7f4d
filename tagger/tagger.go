// Package tagger runs a Japanese morphological analyzer on raw text and
// returns its line-oriented tabular output. Two backends are provided: a
// resident in-process kagome tokenizer and the external mecab binary. Both
// emit the same wire format, one token per line:
//
//	surface\tPOS,sub1,sub2,sub3,inflection,conjugation,root,reading,pron
//
// terminated by an EOS line. Backends are chosen explicitly; there is no
// import-time probing and no package-global state.
package tagger

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Engine names accepted by New and Available.
const (
	EngineKagome = "kagome"
	EngineMecab  = "mecab"
)

// ErrUnknownEngine is returned by New for an unrecognized engine name.
var ErrUnknownEngine = errors.New("tagger: unknown engine")

// Tagger produces raw analyzer output for a text string. Parse returns the
// full tabular output; Wakati returns the surface-only (space separated)
// rendering. Both block until the backend returns; errors propagate with no
// retry.
type Tagger interface {
	Parse(ctx context.Context, text string) (string, error)
	Wakati(ctx context.Context, text string) (string, error)
}

// New builds a tagger for the named engine with default settings. Kagome uses
// the IPA dictionary; mecab resolves its binary from conventional locations.
func New(engine string) (Tagger, error) {
	switch engine {
	case EngineKagome:
		return NewKagome(DictIPA), nil
	case EngineMecab:
		return NewMecab(""), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// Available reports whether the named engine can run on this host. Kagome is
// compiled in and always available; mecab requires the binary on PATH or at a
// conventional location.
func Available(engine string) bool {
	switch engine {
	case EngineKagome:
		return true
	case EngineMecab:
		loc := defaultMecabLoc()
		if _, err := exec.LookPath(loc); err == nil {
			return true
		}
		return false
	default:
		return false
	}
}

// Engines lists the engine names this build knows about.
func Engines() []string {
	return []string{EngineKagome, EngineMecab}
}

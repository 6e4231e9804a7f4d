package tagger

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Mecab runs the external mecab binary as a subprocess, one process per
// invocation. Callers must serialize SetPath against concurrent invocations;
// the path is read unguarded by every call.
type Mecab struct {
	path string
	log  zerolog.Logger
}

// NewMecab creates a mecab-backed tagger. An empty path resolves the binary
// from conventional locations for the platform.
func NewMecab(path string) *Mecab {
	if path == "" {
		path = defaultMecabLoc()
	}
	return &Mecab{path: path, log: log.With().Str("component", "tagger").Logger()}
}

func defaultMecabLoc() string {
	if runtime.GOOS == "windows" {
		for _, loc := range []string{
			`C:\Program Files (x86)\MeCab\bin\mecab.exe`,
			`C:\Program Files\MeCab\bin\mecab.exe`,
		} {
			if isFile(loc) {
				return loc
			}
		}
		return "mecab.exe"
	}
	if isFile("/usr/local/bin/mecab") {
		return "/usr/local/bin/mecab"
	}
	return "mecab"
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Path returns the configured binary location.
func (m *Mecab) Path() string { return m.path }

// SetPath overrides the binary location. A location that does not exist is
// logged but still accepted; the failure surfaces at invocation time.
func (m *Mecab) SetPath(loc string) {
	if !isFile(loc) {
		m.log.Warn().Str("path", loc).Msg("provided mecab binary location does not exist")
	}
	m.log.Info().Str("path", loc).Msg("mecab binary switched")
	m.path = loc
}

func (m *Mecab) run(ctx context.Context, text string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, m.path, args...)
	cmd.Stdin = strings.NewReader(text)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tagger: mecab (%s): %w", m.path, err)
	}
	return string(out), nil
}

// Parse feeds text to mecab on stdin and returns its tabular output.
func (m *Mecab) Parse(ctx context.Context, text string) (string, error) {
	return m.run(ctx, text)
}

// Wakati runs mecab in surface-only mode (-Owakati).
func (m *Mecab) Wakati(ctx context.Context, text string) (string, error) {
	return m.run(ctx, text, "-Owakati")
}

// Version reports the mecab binary version string.
func (m *Mecab) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, m.path, "-v").Output()
	if err != nil {
		return "", fmt.Errorf("tagger: mecab (%s): %w", m.path, err)
	}
	return strings.TrimSpace(string(out)), nil
}

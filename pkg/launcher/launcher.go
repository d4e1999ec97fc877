// Package launcher starts the Finanza development server next to the launcher
// binary, waits for it to come up, opens the app in the default browser and
// then keeps the console alive until interrupted.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/Snider/finanza-launcher/pkg/browser"
	"github.com/Snider/finanza-launcher/pkg/logger"
	"github.com/Snider/finanza-launcher/pkg/probe"
	"github.com/Snider/finanza-launcher/pkg/ui"
	"github.com/schollz/progressbar/v3"
)

const (
	// AppURL is where the dev server listens; the port is fixed by the
	// front-end's Vite config.
	AppURL = "http://localhost:8080"

	StartupDelay  = 5 * time.Second
	IdleInterval  = 1 * time.Second
	ReadyInterval = 250 * time.Millisecond

	DefaultReadyTimeout = 30 * time.Second
)

var (
	ExecCommand = exec.Command
	Executable  = os.Executable
)

// Options tweak a run. The zero value reproduces the plain behaviour: fixed
// delay, no readiness probe, browser opened.
type Options struct {
	WaitReady    bool
	ReadyTimeout time.Duration
	NoBrowser    bool
}

// Launcher runs the start-up sequence. Its function fields are the seams used
// by tests; New fills them with the real implementations.
type Launcher struct {
	In           io.Reader
	ServerOutput io.Writer // nil discards the dev server's output

	OpenURL  func(url string) error
	WaitPort func(ctx context.Context, address string, interval, timeout time.Duration) error
	Sleep    func(ctx context.Context, d time.Duration) error

	opts        Options
	log         *slog.Logger
	printer     *ui.Printer
	interactive bool
	state       State
}

// New creates a Launcher that prints status to out and reads the
// acknowledgment prompt from in.
func New(out io.Writer, in io.Reader, log *slog.Logger, opts Options) *Launcher {
	if opts.ReadyTimeout <= 0 {
		opts.ReadyTimeout = DefaultReadyTimeout
	}
	if log == nil {
		log = logger.Discard()
	}
	l := &Launcher{
		In:          in,
		OpenURL:     browser.Open,
		WaitPort:    probe.WaitForPort,
		Sleep:       sleepContext,
		opts:        opts,
		log:         log,
		printer:     ui.NewPrinter(out),
		interactive: ui.IsTerminal(out),
	}
	// The child only inherits a real console.
	if f, ok := out.(*os.File); ok {
		l.ServerOutput = f
	}
	return l
}

// State returns the phase the launcher is in.
func (l *Launcher) State() State {
	return l.state
}

func (l *Launcher) enter(s State) {
	l.log.Debug("launcher state", "from", l.state, "to", s)
	l.state = s
}

// ResolveBaseDir returns the absolute directory holding the launcher binary.
// It does not depend on the current working directory.
func (l *Launcher) ResolveBaseDir() (string, error) {
	exe, err := Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	exe, err = filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	return filepath.Dir(exe), nil
}

// StartServer starts the dev server with baseDir as its working directory and
// returns without waiting for it. The process is never waited on or killed.
func (l *Launcher) StartServer(baseDir string) (*exec.Cmd, error) {
	name, args := ServerCommand()
	cmd := ExecCommand(name, args...)
	cmd.Dir = baseDir
	cmd.Stdout = l.ServerOutput
	cmd.Stderr = l.ServerOutput

	l.log.Debug("starting dev server", "cmd", cmd.String(), "dir", baseDir)
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{
			Command: append([]string{name}, args...),
			Dir:     baseDir,
			Err:     err,
		}
	}
	l.log.Debug("dev server started", "pid", cmd.Process.Pid)
	return cmd, nil
}

// WaitFixed suspends for d in one-second steps, drawing a countdown when
// attached to a terminal. It only returns early if ctx is cancelled.
func (l *Launcher) WaitFixed(ctx context.Context, d time.Duration) error {
	var bar *progressbar.ProgressBar
	if l.interactive {
		bar = ui.NewCountdownBar(d, "", l.printer.Writer())
	}

	for remaining := d; remaining > 0; {
		step := min(IdleInterval, remaining)
		if err := l.Sleep(ctx, step); err != nil {
			return err
		}
		remaining -= step
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return nil
}

// OpenBrowser opens url in the default browser. Failures are reported but
// never stop the run.
func (l *Launcher) OpenBrowser(url string) {
	if err := l.OpenURL(url); err != nil {
		l.log.Warn("could not open browser", "url", url, "err", err)
		l.printer.Warn("Não foi possível abrir o navegador: %v", err)
		l.printer.Hint("Abra %s manualmente.", url)
	}
}

// IdleForever sleeps in IdleInterval steps until ctx is cancelled, then prints
// the shutdown line. The dev server is left running.
func (l *Launcher) IdleForever(ctx context.Context) error {
	for {
		if err := l.Sleep(ctx, IdleInterval); err != nil {
			break
		}
	}
	l.shutdown()
	return nil
}

func (l *Launcher) shutdown() {
	l.printer.Blank()
	l.printer.Info("Encerrando...")
	l.enter(StateTerminated)
}

// Run executes the whole sequence: resolve, spawn, wait, open, idle. A
// *SpawnError is returned after the user acknowledged it; an interrupt at any
// point after spawning is a clean exit.
func (l *Launcher) Run(ctx context.Context) error {
	p := l.printer
	l.state = StateInit

	baseDir, err := l.ResolveBaseDir()
	if err != nil {
		return err
	}
	p.Info("Diretório do projeto: %s", baseDir)

	l.enter(StateSpawning)
	p.Info("Iniciando o servidor (Vite)...")
	if _, err := l.StartServer(baseDir); err != nil {
		p.Error("Erro ao iniciar o servidor: %v", err)
		if perr := ui.WaitForEnter(l.In, p.Writer(), "Pressione Enter para sair..."); perr != nil {
			l.log.Debug("prompt failed", "err", perr)
		}
		return err
	}

	l.enter(StateWaiting)
	p.Info("Aguardando %d segundos para o servidor iniciar...", int(StartupDelay/time.Second))
	if err := l.WaitFixed(ctx, StartupDelay); err != nil {
		l.shutdown()
		return nil
	}
	if l.opts.WaitReady {
		if err := l.waitReady(ctx); err != nil {
			l.shutdown()
			return nil
		}
	}

	l.enter(StateOpening)
	p.Info("Abrindo o App em: %s", AppURL)
	if l.opts.NoBrowser {
		l.log.Debug("browser disabled", "url", AppURL)
	} else {
		l.OpenBrowser(AppURL)
	}

	p.Blank()
	p.Success("O Finanza foi iniciado com sucesso!")
	p.Info("MANTENHA ESTA JANELA ABERTA para manter o servidor rodando.")
	p.Info("Para encerrar, basta fechar esta janela.")

	l.enter(StateIdle)
	return l.IdleForever(ctx)
}

// waitReady polls the app port after the fixed delay. Only cancellation is
// returned; a timeout is a warning.
func (l *Launcher) waitReady(ctx context.Context) error {
	addr, err := probe.AddressFromURL(AppURL)
	if err != nil {
		l.log.Warn("skipping readiness probe", "err", err)
		return nil
	}

	l.printer.Info("Aguardando o servidor responder em %s...", addr)
	err = l.WaitPort(ctx, addr, ReadyInterval, l.opts.ReadyTimeout)
	switch {
	case err == nil:
		l.log.Debug("dev server is accepting connections", "addr", addr)
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, probe.ErrTimeout):
		l.log.Warn("dev server not ready", "addr", addr, "timeout", l.opts.ReadyTimeout)
		l.printer.Warn("O servidor ainda não respondeu em %s; abrindo o navegador mesmo assim.", addr)
	default:
		l.log.Warn("readiness probe failed", "addr", addr, "err", err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

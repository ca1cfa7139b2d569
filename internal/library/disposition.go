package library

import "github.com/dagu-org/psig/internal/signal"

// Current returns the disposition in effect for sig: its override when one
// is set, its default otherwise.
func (l *Library) Current(sig signal.Signal) signal.Disposition {
	if o := l.overrides[sig].Load(); o != 0 {
		return signal.Disposition(o - 1)
	}
	return sig.DefaultDisposition()
}

// Override changes the disposition of sig. It fails for SIGKILL, SIGSTOP and
// Unspecified, and returns true straight away when d is already in effect.
//
// Ignore is applied natively by the OS. Returning to the default disposition
// restores the native default while stopped and routes sig back to the
// dispatcher while running. Any other disposition is carried out by the
// dispatcher after callbacks have run, so it requires a running library.
func (l *Library) Override(sig signal.Signal, d signal.Disposition) bool {
	if !sig.IsHookable() || d == signal.Unspecified || !signal.ValidateDisposition(uint(d)) {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.Current(sig)
	if current == d {
		return true
	}
	running := l.IsRunning()
	raw := sig.Raw()
	switch {
	case d == sig.DefaultDisposition() && running:
		// The dispatcher owns sig again; callbacks keep running.
		if err := l.source.Notify(l.ch, raw); err != nil {
			l.logger.Warn("failed to reinstall handler", "signal", sig.Name(), "err", err)
			return false
		}
	case d == sig.DefaultDisposition():
		l.source.Reset(raw)
	case d == signal.Ignore:
		l.source.Ignore(raw)
	case !running:
		return false
	case current == signal.Ignore:
		if err := l.source.Notify(l.ch, raw); err != nil {
			l.logger.Warn("failed to reinstall handler", "signal", sig.Name(), "err", err)
			return false
		}
	}

	if d == sig.DefaultDisposition() {
		l.overrides[sig].Store(0)
	} else {
		l.overrides[sig].Store(uint32(d) + 1)
	}
	return true
}

// Reset drops any override on sig and restores its default disposition.
func (l *Library) Reset(sig signal.Signal) {
	if !sig.IsHookable() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.overrides[sig].Store(0)
	if l.IsRunning() {
		if err := l.source.Notify(l.ch, sig.Raw()); err != nil {
			l.logger.Warn("failed to reinstall handler", "signal", sig.Name(), "err", err)
		}
		return
	}
	l.source.Reset(sig.Raw())
}

// enforce carries out an emulated disposition once callbacks have run.
func (l *Library) enforce(sig signal.Signal) {
	o := l.overrides[sig].Load()
	if o == 0 {
		return
	}
	switch signal.Disposition(o - 1) {
	case signal.Stop:
		_ = l.source.Raise(signal.SIGSTOP.Raw())
	case signal.Terminate:
		l.reraise(signal.SIGTERM)
	case signal.CoreDump:
		l.reraise(signal.SIGQUIT)
	case signal.Continue, signal.Ignore, signal.Unspecified:
	}
}

// reraise restores the native default of target and sends it to the process.
func (l *Library) reraise(target signal.Signal) {
	l.source.Reset(target.Raw())
	if err := l.source.Raise(target.Raw()); err != nil {
		l.logger.Error("failed to raise signal", "signal", target.Name(), "err", err)
	}
}

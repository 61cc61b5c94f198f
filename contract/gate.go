package contract

import (
	"github.com/pkg/errors"
)

// Halt/pause gate. Three states: running, stopped (reversible) and killed
// (terminal). Every game operation checks the gate first; withdrawal only
// refuses the killed state so parties can always recover funds while merely
// paused.

const gateKey = "admin_gate"

type gate struct {
	host Host
}

func (g *gate) load() (gateState, bool, error) {
	raw, ok := g.host.StateGet(gateKey)
	if !ok {
		return gateState{}, false, nil
	}
	st, err := decodeGate(raw)
	if err != nil {
		return gateState{}, false, errors.Wrap(err, "gate state")
	}
	return st, true, nil
}

func (g *gate) save(st gateState) {
	g.host.StateSet(gateKey, encodeGate(st))
}

// checkRunning gates every state-mutating game entry point. An uninitialized
// gate counts as running.
func (g *gate) checkRunning() error {
	st, ok, err := g.load()
	if err != nil || !ok {
		return err
	}
	if st.Killed {
		return ErrHalted
	}
	if st.Stopped {
		return ErrStopped
	}
	return nil
}

func (g *gate) checkNotKilled() error {
	st, ok, err := g.load()
	if err != nil || !ok {
		return err
	}
	if st.Killed {
		return ErrHalted
	}
	return nil
}

// requireOwner loads the gate and verifies the sender owns the contract.
func (g *gate) requireOwner() (gateState, error) {
	st, ok, err := g.load()
	if err != nil {
		return gateState{}, err
	}
	if !ok || st.Owner != g.host.Env().Sender {
		return gateState{}, ErrNotOwner
	}
	return st, nil
}

// Init claims ownership of the gate for the sender. First caller wins;
// repeat calls fail.
func (e *Engine) Init() error {
	if _, ok, err := e.gate.load(); err != nil {
		return err
	} else if ok {
		return ErrAlreadyInit
	}
	owner := e.host.Env().Sender
	e.gate.save(gateState{Owner: owner})
	emitGateInitialized(e.host, owner)
	return nil
}

// Pause stops all game operations. Withdrawals stay available.
func (e *Engine) Pause() error {
	st, err := e.gate.requireOwner()
	if err != nil {
		return err
	}
	if st.Killed {
		return ErrHalted
	}
	if st.Stopped {
		return ErrAlreadyStopped
	}
	st.Stopped = true
	e.gate.save(st)
	emitGatePaused(e.host, st.Owner)
	return nil
}

// Resume reopens game operations after a pause.
func (e *Engine) Resume() error {
	st, err := e.gate.requireOwner()
	if err != nil {
		return err
	}
	if st.Killed {
		return ErrHalted
	}
	if !st.Stopped {
		return ErrNotStopped
	}
	st.Stopped = false
	e.gate.save(st)
	emitGateResumed(e.host, st.Owner)
	return nil
}

// Kill halts the contract permanently. There is no way back; only Drain
// remains callable afterwards.
func (e *Engine) Kill() error {
	st, err := e.gate.requireOwner()
	if err != nil {
		return err
	}
	if st.Killed {
		return ErrHalted
	}
	st.Killed = true
	st.Stopped = true
	e.gate.save(st)
	emitGateKilled(e.host, st.Owner)
	return nil
}

// Drain transfers the residual contract balance to the owner. Only reachable
// once the contract is killed.
func (e *Engine) Drain() error {
	st, err := e.gate.requireOwner()
	if err != nil {
		return err
	}
	if !st.Killed {
		return ErrNotKilled
	}
	amount := e.host.SelfBalance()
	if amount.IsZero() {
		return ErrNoFunds
	}
	emitGateDrained(e.host, st.Owner, amount)
	if err := e.host.Transfer(st.Owner, amount); err != nil {
		return errors.WithMessage(ErrTransferFailed, err.Error())
	}
	return nil
}

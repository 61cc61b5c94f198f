package contract

import "errors"

// Every failure is an atomic abort: entry points validate all of these before
// their first state write, so a returned error means nothing was mutated.

// Validation errors, correctable by the caller.
var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrInvalidCommitment = errors.New("invalid commitment")
	ErrDepositRequired   = errors.New("deposit required")
	ErrDepositMismatch   = errors.New("payment does not match deposit")
	ErrSamePlayer        = errors.New("counterparty must differ from sender")
	ErrIncorrectPlayer   = errors.New("incorrect player")
)

// State-conflict errors: the caller should re-query game state before retrying.
var (
	ErrGameIDUsed         = errors.New("game id already used")
	ErrGameNotFound       = errors.New("game not found")
	ErrAlreadyMoved       = errors.New("player2 has already moved")
	ErrCounterMoveMade    = errors.New("player2 has made a move")
	ErrNoCounterMove      = errors.New("player2 has not made a move")
	ErrNotYetExpired      = errors.New("game not yet expired")
	ErrCommitmentMismatch = errors.New("reveal does not match commitment")
)

// Fund errors.
var (
	ErrNoFunds        = errors.New("no funds to withdraw")
	ErrTransferFailed = errors.New("transfer failed")
)

// Administrative errors.
var (
	ErrStopped        = errors.New("contract is stopped")
	ErrHalted         = errors.New("contract is permanently halted")
	ErrNotOwner       = errors.New("sender is not the owner")
	ErrAlreadyInit    = errors.New("owner already set")
	ErrNotKilled      = errors.New("contract is not killed")
	ErrAlreadyStopped = errors.New("contract is already stopped")
	ErrNotStopped     = errors.New("contract is not stopped")
)

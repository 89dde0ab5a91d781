package app

import (
	"encoding/json"
	"fmt"

	"corebanking/domain"
	"corebanking/logging"
	"corebanking/store"
)

// bankState is the serialized shape of a whole bank.
type bankState struct {
	RoutingCode int64                 `json:"routingCode"`
	LastIssued  int64                 `json:"lastIssued"`
	Accounts    []domain.AccountState `json:"accounts"`
}

// Snapshot serializes the whole bank: routing code, number counter and
// every account's state, in account-number order.
func (b *Bank) Snapshot() (*store.Snapshot, error) {
	state := bankState{
		RoutingCode: b.routingCode,
		LastIssued:  b.lastIssued,
		Accounts:    make([]domain.AccountState, 0, len(b.accounts)),
	}
	for _, number := range b.sortedNumbers() {
		accountState, err := domain.CaptureState(b.accounts[number])
		if err != nil {
			return nil, fmt.Errorf("snapshotting account %d: %w", number, err)
		}
		state.Accounts = append(state.Accounts, accountState)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshalling bank %d state: %w", b.routingCode, err)
	}
	return store.NewSnapshot(b.routingCode, raw), nil
}

// RestoreBank rebuilds a bank from a snapshot. Observers are not part of
// bank state; the restored accounts carry fresh notification streams.
func RestoreBank(snapshot *store.Snapshot, errlog logging.ErrorLogger) (*Bank, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: snapshot must not be nil", domain.ErrInvalidArgument)
	}

	var state bankState
	if err := json.Unmarshal(snapshot.State, &state); err != nil {
		return nil, fmt.Errorf("unmarshalling bank %d state: %w", snapshot.RoutingCode, err)
	}

	bank, err := NewBank(state.RoutingCode, errlog)
	if err != nil {
		return nil, err
	}
	bank.lastIssued = state.LastIssued
	for _, accountState := range state.Accounts {
		account, err := domain.RestoreAccount(accountState)
		if err != nil {
			return nil, fmt.Errorf("restoring account %d: %w", accountState.Number, err)
		}
		bank.accounts[accountState.Number] = account
	}
	return bank, nil
}

// Clone returns a deep copy of the bank via a serialization round trip,
// sharing nothing with the original but the error logger.
func (b *Bank) Clone() (*Bank, error) {
	snapshot, err := b.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("cloning bank %d: %w", b.routingCode, err)
	}
	return RestoreBank(snapshot, b.errlog)
}

package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pronotes/internal/storage/kv"
)

// Repository persists the account collection as a single JSON array under
// the "users" key. Every mutation re-persists the whole collection.
type Repository interface {
	List(ctx context.Context) ([]Account, error)
	Append(ctx context.Context, acc Account) error
}

func NewRepo(store kv.Store) Repository {
	return &repository{store: store}
}

type repository struct {
	store kv.Store
}

func (r *repository) List(ctx context.Context) ([]Account, error) {
	data, err := r.store.Get(ctx, kv.KeyUsers)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}

	return accounts, nil
}

func (r *repository) Append(ctx context.Context, acc Account) error {
	accounts, err := r.List(ctx)
	if err != nil {
		return err
	}

	accounts = append(accounts, acc)

	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	if err := r.store.Set(ctx, kv.KeyUsers, data); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}

	return nil
}

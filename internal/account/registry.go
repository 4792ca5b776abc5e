// Package account merges the transparent and shielded account sources of a
// chain, keeps track of the current selection and resolves receive addresses.
package account

import "github.com/AlexZinkM/receive-wallet/internal/model"

// Registry is an ordered id -> account mapping for one chain.
// Iteration order is transparent accounts first, then shielded accounts,
// each in source order. A Registry is never modified after Merge returns.
type Registry struct {
	ids  []string
	byID map[string]model.Account
}

// Merge combines the transparent and shielded sources of one chain.
// When an id appears twice the later entry wins but keeps the position of
// the first occurrence.
func Merge(transparent, shielded []model.Account) *Registry {
	r := &Registry{
		ids:  make([]string, 0, len(transparent)+len(shielded)),
		byID: make(map[string]model.Account, len(transparent)+len(shielded)),
	}
	for _, acc := range transparent {
		r.put(acc)
	}
	for _, acc := range shielded {
		r.put(acc)
	}
	return r
}

func (r *Registry) put(acc model.Account) {
	if _, ok := r.byID[acc.ID]; !ok {
		r.ids = append(r.ids, acc.ID)
	}
	r.byID[acc.ID] = acc
}

// Len returns the number of accounts
func (r *Registry) Len() int {
	return len(r.ids)
}

// Get returns the account with the given id
func (r *Registry) Get(id string) (model.Account, bool) {
	acc, ok := r.byID[id]
	return acc, ok
}

// First returns the first account in iteration order
func (r *Registry) First() (model.Account, bool) {
	if len(r.ids) == 0 {
		return model.Account{}, false
	}
	return r.byID[r.ids[0]], true
}

// Accounts returns all accounts in iteration order
func (r *Registry) Accounts() []model.Account {
	out := make([]model.Account, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

// Options returns the account picker entries in iteration order
func (r *Registry) Options() []model.AccountOption {
	out := make([]model.AccountOption, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, model.AccountOption{
			Value: id,
			Label: r.byID[id].Label(),
		})
	}
	return out
}

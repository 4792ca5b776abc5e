package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/AlexZinkM/receive-wallet/internal/model"
)

// Book holds the transparent (derived) and shielded account sources of every chain
type Book struct {
	derived  map[string][]model.Account
	shielded map[string][]model.Account
}

// NewBook creates an empty book
func NewBook() *Book {
	return &Book{
		derived:  make(map[string][]model.Account),
		shielded: make(map[string][]model.Account),
	}
}

// AddTransparent appends transparent accounts to the source of chainID
func (b *Book) AddTransparent(chainID string, accounts ...model.Account) {
	b.derived[chainID] = append(b.derived[chainID], accounts...)
}

// AddShielded appends shielded accounts to the source of chainID
func (b *Book) AddShielded(chainID string, accounts ...model.Account) {
	b.shielded[chainID] = append(b.shielded[chainID], accounts...)
}

// Registry merges the account sources of chainID.
// A chain without accounts yields an empty registry.
func (b *Book) Registry(chainID string) *Registry {
	return Merge(b.derived[chainID], b.shielded[chainID])
}

// ChainIDs returns the sorted ids of chains that have at least one account
func (b *Book) ChainIDs() []string {
	seen := make(map[string]struct{})
	for id, accs := range b.derived {
		if len(accs) > 0 {
			seen[id] = struct{}{}
		}
	}
	for id, accs := range b.shielded {
		if len(accs) > 0 {
			seen[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// accountsFile represents accounts.json structure
type accountsFile struct {
	Derived  map[string][]accountRecord `json:"derived"`
	Shielded map[string][]accountRecord `json:"shieldedAccounts"`
}

type accountRecord struct {
	ID                 string              `json:"id"`
	Alias              string              `json:"alias"`
	Balance            json.Number         `json:"balance"`
	TokenType          string              `json:"tokenType"`
	EstablishedAddress string              `json:"establishedAddress,omitempty"`
	ShieldedKeys       *model.ShieldedKeys `json:"shieldedKeysAndPaymentAddress,omitempty"`
}

func (r accountRecord) account(key model.ReceiveKey) model.Account {
	return model.Account{
		ID:        r.ID,
		Alias:     r.Alias,
		Balance:   r.Balance.String(),
		TokenType: r.TokenType,
		Key:       key,
	}
}

// LoadBook reads account sources from a JSON accounts file
func LoadBook(filePath string) (*Book, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("accounts file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, errors.New("accounts file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	var f accountsFile
	if err := json.Unmarshal(fileData, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accounts file: %w", err)
	}

	book := NewBook()
	for chainID, records := range f.Derived {
		for _, rec := range records {
			if rec.ID == "" {
				return nil, fmt.Errorf("derived account on chain %s has no id", chainID)
			}
			book.AddTransparent(chainID, rec.account(model.TransparentKey{Address: rec.EstablishedAddress}))
		}
	}
	for chainID, records := range f.Shielded {
		for _, rec := range records {
			if rec.ID == "" {
				return nil, fmt.Errorf("shielded account on chain %s has no id", chainID)
			}
			// A shielded record without keys stays keyless and resolves to no address
			var key model.ReceiveKey
			if rec.ShieldedKeys != nil {
				key = *rec.ShieldedKeys
			}
			book.AddShielded(chainID, rec.account(key))
		}
	}

	return book, nil
}

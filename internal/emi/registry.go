package emi

import (
	"strings"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// Registry is the static table of financing providers. It is built once at
// process start and offers lookup by identifier or display name.
type Registry struct {
	providers []domain.BankProvider
	byKey     map[string]int
}

// NewRegistry builds a Registry from the given providers. Both the id and
// the display name are indexed case-insensitively.
func NewRegistry(providers []domain.BankProvider) *Registry {
	r := &Registry{
		providers: providers,
		byKey:     make(map[string]int, len(providers)*2),
	}
	for i, p := range providers {
		r.byKey[strings.ToLower(p.ID)] = i
		r.byKey[strings.ToLower(p.Name)] = i
	}
	return r
}

// FindBank looks up a provider by id or display name.
func (r *Registry) FindBank(idOrName string) (*domain.BankProvider, error) {
	idx, ok := r.byKey[strings.ToLower(strings.TrimSpace(idOrName))]
	if !ok {
		return nil, domain.ErrBankNotFound
	}
	return &r.providers[idx], nil
}

// List returns all providers in registration order.
func (r *Registry) List() []domain.BankProvider {
	out := make([]domain.BankProvider, len(r.providers))
	copy(out, r.providers)
	return out
}

// DefaultProviders returns the built-in financing partner table.
func DefaultProviders() []domain.BankProvider {
	standardTenures := []int{3, 6, 9, 12, 18, 24}
	return []domain.BankProvider{
		{ID: "nabil", Name: "Nabil Bank", AnnualRatePercent: 11.5, TenureOptionsMonths: standardTenures},
		{ID: "nic-asia", Name: "NIC Asia Bank", AnnualRatePercent: 12, TenureOptionsMonths: standardTenures},
		{ID: "global-ime", Name: "Global IME Bank", AnnualRatePercent: 11.75, TenureOptionsMonths: standardTenures},
		{ID: "himalayan", Name: "Himalayan Bank", AnnualRatePercent: 12.25, TenureOptionsMonths: []int{6, 12, 18, 24}},
		{ID: "kumari", Name: "Kumari Bank", AnnualRatePercent: 12.5, TenureOptionsMonths: standardTenures},
		{ID: "laxmi-sunrise", Name: "Laxmi Sunrise Bank", AnnualRatePercent: 12, TenureOptionsMonths: []int{3, 6, 12, 18}},
		{ID: "siddhartha", Name: "Siddhartha Bank", AnnualRatePercent: 11.99, TenureOptionsMonths: standardTenures},
	}
}

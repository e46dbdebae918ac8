package ledger

import "github.com/hance08/bankbook/internal/model"

// Policy holds the rules that may differ between account types.
type Policy struct {
	AllowOverdraft bool
}

// DefaultPolicies forbids overdraft on every account type.
func DefaultPolicies() map[model.AccountType]Policy {
	policies := make(map[model.AccountType]Policy, len(model.AccountTypes))
	for _, t := range model.AccountTypes {
		policies[t] = Policy{}
	}
	return policies
}

func (l *Ledger) policyFor(t model.AccountType) Policy {
	return l.policies[t]
}

package constants

const (
	// Ledger operations, used as log and view labels
	OpCreate   = "create"
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpTransfer = "transfer"
	OpRename   = "rename"
)

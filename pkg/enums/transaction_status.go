package enums

import "fmt"

// TransactionStatus describes the allowed values for the `status` column in
// transactions. PENDING is the only non-terminal status.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusCapture    TransactionStatus = "CAPTURE"
	TransactionStatusSettlement TransactionStatus = "SETTLEMENT"
	TransactionStatusDeny       TransactionStatus = "DENY"
	TransactionStatusCancel     TransactionStatus = "CANCEL"
	TransactionStatusExpire     TransactionStatus = "EXPIRE"
	TransactionStatusFailure    TransactionStatus = "FAILURE"
)

var validTransactionStatuses = []TransactionStatus{
	TransactionStatusPending,
	TransactionStatusCapture,
	TransactionStatusSettlement,
	TransactionStatusDeny,
	TransactionStatusCancel,
	TransactionStatusExpire,
	TransactionStatusFailure,
}

// String implements fmt.Stringer.
func (s TransactionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches the canonical transaction status enum.
func (s TransactionStatus) IsValid() bool {
	for _, candidate := range validTransactionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends the payment lifecycle.
func (s TransactionStatus) IsTerminal() bool {
	return s.IsValid() && s != TransactionStatusPending
}

// ParseTransactionStatus converts the raw string to TransactionStatus.
func ParseTransactionStatus(value string) (TransactionStatus, error) {
	for _, candidate := range validTransactionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction status %q", value)
}

// TransactionStatusFromGateway maps a Midtrans transaction_status value to the
// canonical enum. Unrecognized values stay PENDING.
func TransactionStatusFromGateway(value string) TransactionStatus {
	switch value {
	case "capture", "settlement":
		return TransactionStatusSettlement
	case "deny":
		return TransactionStatusDeny
	case "cancel":
		return TransactionStatusCancel
	case "expire":
		return TransactionStatusExpire
	case "failure":
		return TransactionStatusFailure
	default:
		return TransactionStatusPending
	}
}

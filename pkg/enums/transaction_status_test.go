package enums

import "testing"

func TestTransactionStatusFromGateway(t *testing.T) {
	tests := []struct {
		gateway string
		want    TransactionStatus
	}{
		{"capture", TransactionStatusSettlement},
		{"settlement", TransactionStatusSettlement},
		{"deny", TransactionStatusDeny},
		{"cancel", TransactionStatusCancel},
		{"expire", TransactionStatusExpire},
		{"failure", TransactionStatusFailure},
		{"pending", TransactionStatusPending},
		{"authorize", TransactionStatusPending},
		{"", TransactionStatusPending},
	}

	for _, tt := range tests {
		if got := TransactionStatusFromGateway(tt.gateway); got != tt.want {
			t.Fatalf("gateway status %q mapped to %s, want %s", tt.gateway, got, tt.want)
		}
	}
}

func TestTransactionStatusIsTerminal(t *testing.T) {
	if TransactionStatusPending.IsTerminal() {
		t.Fatalf("PENDING must not be terminal")
	}
	for _, s := range []TransactionStatus{
		TransactionStatusCapture,
		TransactionStatusSettlement,
		TransactionStatusDeny,
		TransactionStatusCancel,
		TransactionStatusExpire,
		TransactionStatusFailure,
	} {
		if !s.IsTerminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
	if TransactionStatus("UNKNOWN").IsTerminal() {
		t.Fatalf("unknown status should not be terminal")
	}
}

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("USER")
	if err != nil || role != UserRoleUser {
		t.Fatalf("expected USER role, got %v err %v", role, err)
	}
	if _, err := ParseUserRole("user"); err == nil {
		t.Fatalf("lowercase role should be rejected")
	}
}

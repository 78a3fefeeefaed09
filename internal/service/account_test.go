package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/hance08/sats/internal/validation"
)

func TestDeposit(t *testing.T) {
	tests := []struct {
		balance string
		amount  string
		want    int64
	}{
		{"0", "1", 1},
		{"1500", "500", 2000},
		{"999999", "1", 1000000},
		{"5", "007", 12},
	}

	for _, tt := range tests {
		as, repo := setupAccountService(t)
		acc := mustCreate(t, as, "john", tt.balance)

		msg, err := acc.Deposit(tt.amount)
		if err != nil {
			t.Fatalf("Deposit(%q) err=%v", tt.amount, err)
		}
		if acc.Balance() != tt.want {
			t.Errorf("in-memory balance=%d want=%d", acc.Balance(), tt.want)
		}
		if got := storedBalance(t, repo, "JOHN"); got != tt.want {
			t.Errorf("stored balance=%d want=%d", got, tt.want)
		}
		if !strings.Contains(msg, FormatSats(tt.want)) {
			t.Errorf("message %q does not contain %q", msg, FormatSats(tt.want))
		}
	}
}

func TestDeposit_SuccessMessage(t *testing.T) {
	as, _ := setupAccountService(t)
	acc := mustCreate(t, as, "john", "1000")

	msg, err := acc.Deposit("500")
	if err != nil {
		t.Fatal(err)
	}
	want := "Successfully updated your balance.\nNew account balance: SATS 1,500"
	if msg != want {
		t.Fatalf("msg=%q want=%q", msg, want)
	}
}

func TestDepositWithdraw_RejectInvalidAmount(t *testing.T) {
	inputs := []string{"", "abc", "-5", "0", "00", "1.5", "1,000", " 5", "5 ", "+5", "99999999999999999999"}

	for _, in := range inputs {
		as, repo := setupAccountService(t)
		acc := mustCreate(t, as, "john", "1000")

		if _, err := acc.Deposit(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Deposit(%q) want ErrInvalidAmount, got %v", in, err)
		}
		if _, err := acc.Withdraw(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Withdraw(%q) want ErrInvalidAmount, got %v", in, err)
		}
		if acc.Balance() != 1000 || storedBalance(t, repo, "JOHN") != 1000 {
			t.Errorf("balance changed after %q", in)
		}
	}
}

func TestDeposit_Overflow(t *testing.T) {
	as, repo := setupAccountService(t)
	acc := mustCreate(t, as, "whale", "9223372036854775800")

	_, err := acc.Deposit("100")
	if !errors.Is(err, ErrInvalidAmount) || !errors.Is(err, validation.ErrOutOfRange) {
		t.Fatalf("want ErrInvalidAmount/ErrOutOfRange, got %v", err)
	}
	if got := storedBalance(t, repo, "WHALE"); got != 9223372036854775800 {
		t.Fatalf("stored balance changed: %d", got)
	}
}

func TestWithdraw(t *testing.T) {
	tests := []struct {
		balance string
		amount  string
		want    int64
	}{
		{"1000", "1", 999},
		{"1000", "400", 600},
		{"1000", "1000", 0},
	}

	for _, tt := range tests {
		as, repo := setupAccountService(t)
		acc := mustCreate(t, as, "john", tt.balance)

		msg, err := acc.Withdraw(tt.amount)
		if err != nil {
			t.Fatalf("Withdraw(%q) err=%v", tt.amount, err)
		}
		if msg == InsufficientBalanceMessage {
			t.Fatalf("Withdraw(%q) unexpectedly refused", tt.amount)
		}
		if acc.Balance() != tt.want || storedBalance(t, repo, "JOHN") != tt.want {
			t.Errorf("balance=%d stored=%d want=%d", acc.Balance(), storedBalance(t, repo, "JOHN"), tt.want)
		}
	}
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	as, repo := setupAccountService(t)
	acc := mustCreate(t, as, "john", "1000")

	msg, err := acc.Withdraw("1001")
	if err != nil {
		t.Fatalf("insufficient balance should not be an error, got %v", err)
	}
	if msg != InsufficientBalanceMessage {
		t.Fatalf("msg=%q want=%q", msg, InsufficientBalanceMessage)
	}
	if acc.Balance() != 1000 || storedBalance(t, repo, "JOHN") != 1000 {
		t.Fatal("balance changed after refused withdrawal")
	}
}

func TestCheckWithdrawal(t *testing.T) {
	if err := checkWithdrawal(10, 10); err != nil {
		t.Errorf("checkWithdrawal(10,10) err=%v", err)
	}
	if err := checkWithdrawal(10, 11); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("want ErrInsufficientBalance, got %v", err)
	}
}

func TestAccount_MissingRowIsFatal(t *testing.T) {
	as, repo := setupAccountService(t)
	acc := mustCreate(t, as, "john", "10")

	// the session account only ever updates its own row
	acc.name = "GHOST"
	if _, err := acc.Deposit("5"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
	if got := storedBalance(t, repo, "JOHN"); got != 10 {
		t.Fatalf("stored balance=%d want=10", got)
	}
}

func TestAccount_Refresh(t *testing.T) {
	as, repo := setupAccountService(t)
	acc := mustCreate(t, as, "john", "10")

	if _, err := repo.ApplyDelta("JOHN", 90); err != nil {
		t.Fatal(err)
	}
	if err := acc.Refresh(); err != nil {
		t.Fatal(err)
	}
	if acc.Balance() != 100 {
		t.Fatalf("balance=%d want=100", acc.Balance())
	}
}

func TestFormatSats(t *testing.T) {
	tests := map[int64]string{
		0:         "SATS 0",
		999:       "SATS 999",
		1500:      "SATS 1,500",
		100000000: "SATS 100,000,000",
	}
	for in, want := range tests {
		if got := FormatSats(in); got != want {
			t.Errorf("FormatSats(%d)=%q want=%q", in, got, want)
		}
	}
}

package service

import (
	"errors"
	"testing"

	"github.com/hance08/sats/internal/store"
)

func TestCreate(t *testing.T) {
	as, repo := setupAccountService(t)

	acc, err := as.Create("  john harvard ", "1500")
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if acc.Name() != "JOHN HARVARD" || acc.Balance() != 1500 {
		t.Fatalf("got name=%q balance=%d", acc.Name(), acc.Balance())
	}
	if got := storedBalance(t, repo, "JOHN HARVARD"); got != 1500 {
		t.Fatalf("stored=%d want=1500", got)
	}

	if _, err := as.Create("zero", "0"); err != nil {
		t.Fatalf("zero opening balance should be allowed, err=%v", err)
	}
}

func TestCreate_Rejects(t *testing.T) {
	as, repo := setupAccountService(t)

	if _, err := as.Create("john", "abc"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
	if _, err := as.Create("", "10"); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("want ErrInvalidName, got %v", err)
	}

	mustCreate(t, as, "john", "10")
	if _, err := as.Create("JOHN", "10"); !errors.Is(err, store.ErrAccountExists) {
		t.Fatalf("want ErrAccountExists, got %v", err)
	}

	all, err := repo.GetAllAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("accounts=%d want=1", len(all))
	}
}

func TestOpen_CaseInsensitive(t *testing.T) {
	as, _ := setupAccountService(t)
	mustCreate(t, as, "john", "42")

	for _, name := range []string{"JOHN", "john", "John"} {
		acc, err := as.Open(name)
		if err != nil {
			t.Fatalf("Open(%q) err=%v", name, err)
		}
		if acc.Name() != "JOHN" || acc.Balance() != 42 {
			t.Fatalf("Open(%q) got %q/%d", name, acc.Name(), acc.Balance())
		}
	}

	if _, err := as.Open("jane"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestGetOrCreate_EmptyStoreCreates(t *testing.T) {
	as, repo := setupAccountService(t)
	p := &scriptedPrompter{
		names:    []string{"john"},
		balances: []string{"abc", "1.5", "1500"},
	}

	acc, err := as.GetOrCreate(p)
	if err != nil {
		t.Fatalf("GetOrCreate err=%v", err)
	}
	if acc.Name() != "JOHN" || acc.Balance() != 1500 {
		t.Fatalf("got %q/%d", acc.Name(), acc.Balance())
	}
	if p.invalidBalances != 2 {
		t.Fatalf("invalid balance warnings=%d want=2", p.invalidBalances)
	}
	if got := storedBalance(t, repo, "JOHN"); got != 1500 {
		t.Fatalf("stored=%d want=1500", got)
	}
}

func TestGetOrCreate_FindsExisting(t *testing.T) {
	as, _ := setupAccountService(t)
	mustCreate(t, as, "john", "7")

	p := &scriptedPrompter{existing: []string{"jane", "john"}}

	acc, err := as.GetOrCreate(p)
	if err != nil {
		t.Fatalf("GetOrCreate err=%v", err)
	}
	if acc.Name() != "JOHN" || acc.Balance() != 7 {
		t.Fatalf("got %q/%d", acc.Name(), acc.Balance())
	}
	if len(p.notFound) != 1 || p.notFound[0] != "JANE" {
		t.Fatalf("notFound=%v want=[JANE]", p.notFound)
	}
}

func TestGetOrCreate_NewAccountKey(t *testing.T) {
	as, _ := setupAccountService(t)
	mustCreate(t, as, "john", "7")

	p := &scriptedPrompter{
		existing: []string{"nobody", "n"},
		names:    []string{"jane"},
		balances: []string{"0"},
	}

	acc, err := as.GetOrCreate(p)
	if err != nil {
		t.Fatalf("GetOrCreate err=%v", err)
	}
	if acc.Name() != "JANE" || acc.Balance() != 0 {
		t.Fatalf("got %q/%d", acc.Name(), acc.Balance())
	}
	if len(p.nameValidations) != 1 || p.nameValidations[0] != nil {
		t.Fatalf("nameValidations=%v", p.nameValidations)
	}
}

func TestValidateNewName(t *testing.T) {
	as, _ := setupAccountService(t)
	mustCreate(t, as, "john", "7")

	if err := as.ValidateNewName("JoHn"); err == nil {
		t.Fatal("existing name should fail validation")
	}
	if err := as.ValidateNewName(""); err == nil {
		t.Fatal("empty name should fail validation")
	}
	if err := as.ValidateNewName("jane"); err != nil {
		t.Fatalf("ValidateNewName(jane) err=%v", err)
	}
}

func TestGetOrCreate_ExhaustsAttempts(t *testing.T) {
	as, repo := setupAccountService(t)
	mustCreate(t, as, "john", "7")

	p := &scriptedPrompter{existing: []string{"a", "b", "c", "john"}}

	acc, err := as.GetOrCreate(p)
	if !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("want ErrAttemptsExhausted, got acc=%v err=%v", acc, err)
	}
	if len(p.notFound) != 2 || p.notFound[0] != "A" || p.notFound[1] != "B" {
		t.Fatalf("warnings=%v want=[A B]", p.notFound)
	}
	if len(p.existing) != 1 {
		t.Fatalf("prompted %d times, want exactly 3", 4-len(p.existing))
	}

	all, err := repo.GetAllAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].Balance != 7 {
		t.Fatalf("store mutated: %+v", all)
	}
}

func TestGetOrCreate_PromptError(t *testing.T) {
	as, _ := setupAccountService(t)
	mustCreate(t, as, "john", "7")

	if _, err := as.GetOrCreate(&scriptedPrompter{}); !errors.Is(err, errScriptEnded) {
		t.Fatalf("want prompt error, got %v", err)
	}
}

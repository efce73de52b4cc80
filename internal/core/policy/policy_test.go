package policy

import (
	"testing"

	"github.com/recipehub/recipe-platform/internal/core/domain"
)

var (
	admin       = &domain.User{Username: "admin", Role: domain.RoleAdmin}
	contributor = &domain.User{Username: "carol", Role: domain.RoleContributor}
	explorer    = &domain.User{Username: "eve", Role: domain.RoleExplorer}

	approved   = &domain.Recipe{ID: "r1", AuthorUsername: "someone", Approved: true}
	pending    = &domain.Recipe{ID: "r2", AuthorUsername: "someone", Approved: false}
	carolsOwn  = &domain.Recipe{ID: "r3", AuthorUsername: "Carol", Approved: false}
)

func TestCanView(t *testing.T) {
	cases := []struct {
		name   string
		user   *domain.User
		recipe *domain.Recipe
		want   bool
	}{
		{"admin sees pending", admin, pending, true},
		{"explorer sees approved", explorer, approved, true},
		{"explorer blocked from pending", explorer, pending, false},
		{"contributor blocked from others' pending", contributor, pending, false},
		{"contributor sees own pending, any case", contributor, carolsOwn, true},
		{"nil user sees nothing", nil, approved, false},
	}
	for _, tc := range cases {
		if got := CanView(tc.user, tc.recipe); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestCanEditAndDelete(t *testing.T) {
	if !CanEdit(admin, pending) || !CanDelete(admin, pending) {
		t.Fatalf("admin must edit and delete any recipe")
	}
	if !CanEdit(contributor, carolsOwn) {
		t.Fatalf("contributor must edit own recipe regardless of username case")
	}
	if CanEdit(contributor, pending) || CanDelete(contributor, pending) {
		t.Fatalf("contributor must not touch others' recipes")
	}
	ownedByExplorer := &domain.Recipe{ID: "r4", AuthorUsername: "eve"}
	if CanEdit(explorer, ownedByExplorer) {
		t.Fatalf("explorers never edit, even their own author match")
	}
}

func TestCanCreateAndApprove(t *testing.T) {
	if !CanCreate(admin) || !CanCreate(contributor) {
		t.Fatalf("admins and contributors may create recipes")
	}
	if CanCreate(explorer) || CanCreate(nil) {
		t.Fatalf("explorers may not create recipes")
	}
	if !CanApprove(admin) {
		t.Fatalf("admin must approve")
	}
	if CanApprove(contributor) || CanApprove(explorer) || CanApprove(nil) {
		t.Fatalf("only admins approve")
	}
}

func TestInitialApproval(t *testing.T) {
	if InitialApproval(contributor, true) {
		t.Fatalf("contributor recipes always start unapproved")
	}
	if !InitialApproval(admin, true) {
		t.Fatalf("admin may create a pre-approved recipe")
	}
	if InitialApproval(admin, false) {
		t.Fatalf("admin may also create a pending recipe")
	}
}

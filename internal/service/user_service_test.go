package service

import (
	"context"
	"testing"
)

func TestUserCreate_NoMinimumPasswordLength(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(testConfig(), repo)

	user, err := svc.Create(context.Background(), "Bob", "bob@x.com", "abc")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if user.PasswordHash == "abc" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestUserCreate_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(testConfig(), newFakeUserRepo())

	if _, err := svc.Create(context.Background(), "", "bob@x.com", "abc"); err == nil {
		t.Fatalf("expected validation error for missing name")
	}
	if _, err := svc.Create(context.Background(), "Bob", "bad-email", "abc"); err == nil {
		t.Fatalf("expected validation error for bad email")
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(testConfig(), repo)

	if _, err := svc.Create(context.Background(), "Bob", "bob@x.com", "abc"); err != nil {
		t.Fatalf("first Create error: %v", err)
	}
	_, err := svc.Create(context.Background(), "Other", "bob@x.com", "def")
	if err == nil {
		t.Fatalf("expected conflict, got nil")
	}
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %s", code)
	}
}

func TestUserList_OrderedByID(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(testConfig(), repo)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if _, err := svc.Create(context.Background(), "User", email, "pw"); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i := 1; i < len(users); i++ {
		if users[i-1].ID >= users[i].ID {
			t.Fatalf("users not ordered by ascending id")
		}
	}
}

func TestUserUpdate_PreservesPasswordHash(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(testConfig(), repo)

	created, err := svc.Create(context.Background(), "Bob", "bob@x.com", "secret1")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	hashBefore := repo.users[created.ID].PasswordHash

	updated, err := svc.Update(context.Background(), created.ID, "Robert", "", "")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Name != "Robert" {
		t.Fatalf("name not updated: got %q", updated.Name)
	}
	if updated.Email != "bob@x.com" {
		t.Fatalf("omitted email should be retained: got %q", updated.Email)
	}
	if repo.users[created.ID].PasswordHash != hashBefore {
		t.Fatalf("password hash changed on update without password")
	}
}

func TestUserUpdate_RehashesNewPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(testConfig(), repo)

	created, err := svc.Create(context.Background(), "Bob", "bob@x.com", "secret1")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	hashBefore := repo.users[created.ID].PasswordHash

	if _, err := svc.Update(context.Background(), created.ID, "", "", "new-password"); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	hashAfter := repo.users[created.ID].PasswordHash
	if hashAfter == hashBefore {
		t.Fatalf("password hash should change when password is provided")
	}
	if hashAfter == "new-password" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestUserUpdate_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(testConfig(), newFakeUserRepo())

	_, err := svc.Update(context.Background(), 9999, "Name", "", "")
	if err == nil {
		t.Fatalf("expected not found, got nil")
	}
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
}

func TestUserDelete_ThenGetNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewUserService(testConfig(), repo)

	created, err := svc.Create(context.Background(), "Bob", "bob@x.com", "secret1")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	_, err = svc.Get(context.Background(), created.ID)
	if err == nil {
		t.Fatalf("expected not found after delete, got nil")
	}
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
}

func TestUserDelete_EmptyTable(t *testing.T) {
	t.Parallel()

	svc := NewUserService(testConfig(), newFakeUserRepo())

	err := svc.Delete(context.Background(), 9999)
	if err == nil {
		t.Fatalf("expected not found, got nil")
	}
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %s", code)
	}
}

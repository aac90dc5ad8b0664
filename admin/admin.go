package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"salone/auth"
	"salone/db"
	"salone/globals"
	"salone/models"
)

// QuickResult carries the two records a username-based creation writes: the
// uid-keyed admin account and the username mapping pointing at the same uid.
type QuickResult struct {
	Account models.AdminAccount
	Link    models.AdminUserLink
}

// CreateQuick registers <username>@<domain> with the identity service and
// writes both the uid-keyed record in admins and the username-keyed mapping in
// adminUsers. An empty domain falls back to the default. The two writes have
// no transactional link; a failure between them leaves the admin record
// without its mapping, and re-running repairs it.
func CreateQuick(ctx context.Context, users, admins, adminUsers db.Collection, username, domain, password, name string) (QuickResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return QuickResult{}, errors.New("username is required")
	}
	if domain == "" {
		domain = globals.EmailDomain
	}
	email := username + "@" + domain

	user, err := auth.CreateUser(ctx, users, email, password, name)
	if err != nil {
		return QuickResult{}, err
	}

	account := models.AdminAccount{
		UID:      user.UID,
		Email:    user.Email,
		Username: username,
		Name:     name,
		Active:   true,
	}
	if _, err := db.Upsert(ctx, admins,
		db.Key{Field: "uid", Value: account.UID},
		bson.M{"active": account.Active, "email": account.Email, "username": account.Username, "name": account.Name},
		db.MergeExisting); err != nil {
		return QuickResult{}, fmt.Errorf("writing admin record: %w", err)
	}

	link := models.AdminUserLink{
		Username: username,
		Email:    user.Email,
		UID:      user.UID,
		Active:   true,
	}
	if _, err := db.Upsert(ctx, adminUsers,
		db.Key{Field: "username", Value: link.Username},
		bson.M{"email": link.Email, "uid": link.UID, "active": link.Active},
		db.MergeExisting); err != nil {
		return QuickResult{}, fmt.Errorf("writing username mapping: %w", err)
	}

	return QuickResult{Account: account, Link: link}, nil
}

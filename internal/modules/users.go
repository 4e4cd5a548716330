package modules

import (
	"context"
	"fmt"

	"github.com/capopt/platform/internal/catalog"
	"github.com/capopt/platform/internal/generator"
	"github.com/capopt/platform/internal/seeder"
	"github.com/capopt/platform/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail     = "admin@capopt.com"
	testUserDomain = "capopt.test"
	testUserCount  = 5
	passwordCost   = bcrypt.DefaultCost
)

// seedUsers writes the catalog accounts and, outside staging, a fixed set
// of generated test accounts. Password hashes are only written on insert so
// re-running never resets a password someone has changed.
func seedUsers(ctx context.Context, st *store.Store, opts *seeder.Options) (seeder.Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return seeder.Result{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.DefaultPassword), passwordCost)
	if err != nil {
		return seeder.Result{}, fmt.Errorf("failed to hash default password: %w", err)
	}
	secret := store.Record{"password_hash": string(hash)}

	var tally seeder.Tally
	for _, u := range cat.Users {
		out, err := st.Upsert(ctx, "users", store.Key{"email": u.Email}, store.Record{
			"name":      u.Name,
			"role":      u.Role,
			"phone":     u.Phone,
			"is_active": true,
		}, store.WithInsertOnly(secret))
		if err != nil {
			return tally.Partial(), fmt.Errorf("user %s: %w", u.Email, err)
		}
		tally.Add(out)
	}

	if opts.IncludeTestData {
		faker := generator.NewFaker(generator.DefaultSeed, testUserDomain)
		for _, p := range faker.People(testUserCount) {
			out, err := st.Upsert(ctx, "users", store.Key{"email": p.Email}, store.Record{
				"name":      p.Name,
				"role":      p.Role,
				"phone":     p.Phone,
				"is_active": true,
			}, store.WithInsertOnly(secret))
			if err != nil {
				return tally.Partial(), fmt.Errorf("test user %s: %w", p.Email, err)
			}
			tally.Add(out)
		}
	}

	return tally.Result(fmt.Sprintf("%d users", tally.Created+tally.Updated)), nil
}

func requireAdmin(ctx context.Context, st *store.Store) (string, error) {
	return st.Require(ctx, "users", store.Key{"email": adminEmail}, "admin user")
}

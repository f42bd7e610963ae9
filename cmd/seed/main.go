// seed inserts development sample data through the regular services, so every row it writes has
// its audit event. Idempotent: skips when the dev user already belongs to an entity.
package main

import (
	"context"
	"log"
	"time"

	accountdomain "github.com/grezxune/ours-ledger/internal/account/domain"
	budgetdomain "github.com/grezxune/ours-ledger/internal/budget/domain"
	"github.com/grezxune/ours-ledger/internal/config"
	"github.com/grezxune/ours-ledger/internal/db"
	entitydomain "github.com/grezxune/ours-ledger/internal/entity/domain"
	ledgerdomain "github.com/grezxune/ours-ledger/internal/ledger/domain"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/security"
	"github.com/grezxune/ours-ledger/internal/server"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

const (
	devUserEmail = "dev@example.com"
	memberEmail  = "member@example.com"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	svc := server.NewServices(conn)
	roles := security.NewRoleResolver(cfg.SuperAdminEmailList())

	dev, err := svc.Users.EnsureUser(ctx, devUserEmail, "Dev User", roles.PlatformRole(devUserEmail))
	if err != nil {
		log.Fatalf("ensure dev user: %v", err)
	}
	member, err := svc.Users.EnsureUser(ctx, memberEmail, "Member User", roles.PlatformRole(memberEmail))
	if err != nil {
		log.Fatalf("ensure member user: %v", err)
	}

	existing, err := svc.Memberships.ListByUser(ctx, dev.ID)
	if err != nil {
		log.Fatalf("seed check: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Seed already applied (%s belongs to an entity). Skipping.", devUserEmail)
	} else {
		seedHousehold(ctx, svc, dev, member)
	}

	printTokens(cfg, dev, member)
}

func seedHousehold(ctx context.Context, svc *server.Services, dev, member *userdomain.User) {
	household, err := svc.Entities.Create(ctx, dev.ID, entitydomain.TypeHousehold, entitydomain.Details{
		Name:     "Dev Household",
		Currency: "USD",
		Address: &entitydomain.Address{
			Formatted:   "1 Main St, Springfield, IL 62701, US",
			Line1:       "1 Main St",
			City:        "Springfield",
			Region:      "IL",
			PostalCode:  "62701",
			CountryCode: "US",
		},
		Description: "Sample data for local development",
	})
	if err != nil {
		log.Fatalf("create entity: %v", err)
	}

	inv, _, err := svc.Invitations.Create(ctx, dev.ID, household.ID, member.Email, mdomain.RoleUser)
	if err != nil {
		log.Fatalf("invite member: %v", err)
	}
	if _, _, err := svc.Invitations.Accept(ctx, member.ID, inv.ID); err != nil {
		log.Fatalf("accept invitation: %v", err)
	}

	checking, err := svc.Accounts.Create(ctx, dev.ID, household.ID, accountdomain.Input{
		Name:            "Joint Checking",
		Currency:        "USD",
		Source:          accountdomain.SourceManual,
		InstitutionName: "Dev Credit Union",
	})
	if err != nil {
		log.Fatalf("create account: %v", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	budgetID, err := svc.Budgets.CreateBudget(ctx, dev.ID, household.ID, budgetdomain.BudgetInput{
		Name:          "Household Budget",
		Period:        budgetdomain.PeriodMonthly,
		EffectiveDate: today,
	})
	if err != nil {
		log.Fatalf("create budget: %v", err)
	}
	if _, err := svc.Budgets.AddIncomeSource(ctx, dev.ID, budgetID, budgetdomain.IncomeSourceInput{
		Name:        "Salary",
		AmountCents: 520000,
		Cadence:     budgetdomain.PeriodMonthly,
	}); err != nil {
		log.Fatalf("add income source: %v", err)
	}
	if _, err := svc.Budgets.AddRecurringExpense(ctx, member.ID, budgetID, budgetdomain.RecurringExpenseInput{
		Name:        "Rent",
		AmountCents: 180000,
		Cadence:     budgetdomain.PeriodMonthly,
		AccountID:   checking.ID,
	}); err != nil {
		log.Fatalf("add recurring expense: %v", err)
	}

	if _, err := svc.Transactions.Create(ctx, member.ID, household.ID, ledgerdomain.Input{
		Kind:        ledgerdomain.KindOneOff,
		Type:        ledgerdomain.TypeExpense,
		Status:      ledgerdomain.StatusPosted,
		AmountCents: 8423,
		Date:        today,
		Category:    "Groceries",
		Payee:       "Corner Market",
	}); err != nil {
		log.Fatalf("create transaction: %v", err)
	}

	log.Printf("Seed complete: entity %s with owner %s and member %s", household.ID, dev.Email, member.Email)
}

// printTokens mints access tokens for the seeded users when a signing key is configured.
func printTokens(cfg *config.Config, users ...*userdomain.User) {
	if cfg.JWTPrivateKey == "" {
		log.Println("JWT_PRIVATE_KEY not set; no dev tokens issued")
		return
	}
	signer, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
	if err != nil {
		log.Fatalf("jwt private key: %v", err)
	}
	tokens, err := security.NewTokenProvider(signer, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
	if err != nil {
		log.Fatalf("token provider: %v", err)
	}
	for _, u := range users {
		token, exp, err := tokens.Issue(u.ID, u.Email, u.Name)
		if err != nil {
			log.Fatalf("issue token for %s: %v", u.Email, err)
		}
		log.Printf("%s (expires %s): %s", u.Email, exp.Format(time.RFC3339), token)
	}
}

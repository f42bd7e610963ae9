package server

import (
	"database/sql"

	accountrepo "github.com/grezxune/ours-ledger/internal/account/repository"
	accountservice "github.com/grezxune/ours-ledger/internal/account/service"
	"github.com/grezxune/ours-ledger/internal/audit"
	auditrepo "github.com/grezxune/ours-ledger/internal/audit/repository"
	budgetrepo "github.com/grezxune/ours-ledger/internal/budget/repository"
	budgetservice "github.com/grezxune/ours-ledger/internal/budget/service"
	"github.com/grezxune/ours-ledger/internal/db"
	docrepo "github.com/grezxune/ours-ledger/internal/document/repository"
	docservice "github.com/grezxune/ours-ledger/internal/document/service"
	entityrepo "github.com/grezxune/ours-ledger/internal/entity/repository"
	entityservice "github.com/grezxune/ours-ledger/internal/entity/service"
	"github.com/grezxune/ours-ledger/internal/health"
	invitationrepo "github.com/grezxune/ours-ledger/internal/invitation/repository"
	invitationservice "github.com/grezxune/ours-ledger/internal/invitation/service"
	ledgerrepo "github.com/grezxune/ours-ledger/internal/ledger/repository"
	ledgerservice "github.com/grezxune/ours-ledger/internal/ledger/service"
	membershiprepo "github.com/grezxune/ours-ledger/internal/membership/repository"
	storagerepo "github.com/grezxune/ours-ledger/internal/storageconfig/repository"
	storageservice "github.com/grezxune/ours-ledger/internal/storageconfig/service"
	userrepo "github.com/grezxune/ours-ledger/internal/user/repository"
	userservice "github.com/grezxune/ours-ledger/internal/user/service"
)

// Services are the concrete services over one Postgres pool, sharing one transaction manager
// and one audit recorder.
type Services struct {
	Users        *userservice.UserService
	Memberships  *membershiprepo.PostgresRepository
	Entities     *entityservice.EntityService
	Invitations  *invitationservice.InvitationService
	Accounts     *accountservice.AccountService
	Budgets      *budgetservice.BudgetService
	Transactions *ledgerservice.LedgerService
	Documents    *docservice.DocumentService
	Storage      *storageservice.StorageService
	Audit        *audit.Service
	AuditManual  *audit.ManualRecorder
	Recorder     *audit.Recorder
}

// NewServices builds every repository and service over conn. Exporters receive each audit event
// after its transaction commits.
func NewServices(conn *sql.DB, exporters ...audit.Exporter) *Services {
	tx := db.NewTxManager(conn)
	users := userservice.NewUserService(userrepo.NewPostgresRepository(conn))
	memberships := membershiprepo.NewPostgresRepository(conn)
	accounts := accountrepo.NewPostgresRepository(conn)
	events := auditrepo.NewPostgresRepository(conn)
	recorder := audit.NewRecorder(users, events, exporters...)

	return &Services{
		Users:        users,
		Memberships:  memberships,
		Entities:     entityservice.NewEntityService(tx, entityrepo.NewPostgresRepository(conn), memberships, recorder),
		Invitations:  invitationservice.NewInvitationService(tx, invitationrepo.NewPostgresRepository(conn), memberships, users, recorder),
		Accounts:     accountservice.NewAccountService(tx, accounts, memberships, recorder),
		Budgets:      budgetservice.NewBudgetService(tx, budgetrepo.NewPostgresRepository(conn), accounts, memberships, recorder),
		Transactions: ledgerservice.NewLedgerService(tx, ledgerrepo.NewPostgresRepository(conn), memberships, users, recorder),
		Documents:    docservice.NewDocumentService(tx, docrepo.NewPostgresRepository(conn), memberships, users, recorder),
		Storage:      storageservice.NewStorageService(tx, storagerepo.NewPostgresRepository(conn), users, recorder),
		Audit:        audit.NewService(events, users, memberships, audit.NewResolver(auditrepo.NewPostgresRecordStore(conn))),
		AuditManual:  audit.NewManualRecorder(tx, memberships, recorder),
		Recorder:     recorder,
	}
}

// Deps exposes the services to RegisterServices.
func (s *Services) Deps(checker *health.Checker) Deps {
	return Deps{
		Users:        s.Users,
		Memberships:  s.Memberships,
		Entities:     s.Entities,
		Invitations:  s.Invitations,
		Accounts:     s.Accounts,
		Budgets:      s.Budgets,
		Transactions: s.Transactions,
		Documents:    s.Documents,
		Storage:      s.Storage,
		AuditQuery:   s.Audit,
		AuditManual:  s.AuditManual,
		Health:       checker,
	}
}

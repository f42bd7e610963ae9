package ledgerv1

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PlatformRole string    `json:"platformRole"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Address struct {
	Formatted   string `json:"formatted"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	CountryCode string `json:"countryCode"`
	PlaceID     string `json:"placeId,omitempty"`
}

type Entity struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	Address     Address    `json:"address"`
	Currency    string     `json:"currency"`
	Description string     `json:"description,omitempty"`
	ArchivedAt  *time.Time `json:"archivedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Membership struct {
	ID        string    `json:"id"`
	EntityID  string    `json:"entityId"`
	UserEmail string    `json:"userEmail"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type Invitation struct {
	ID              string    `json:"id"`
	EntityID        string    `json:"entityId"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	InvitedByUserID string    `json:"invitedByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Account struct {
	ID              string    `json:"id"`
	EntityID        string    `json:"entityId"`
	Name            string    `json:"name"`
	Currency        string    `json:"currency"`
	Source          string    `json:"source"`
	InstitutionName string    `json:"institutionName,omitempty"`
	PlaidAccountID  string    `json:"plaidAccountId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Recurrence struct {
	Cadence   string `json:"cadence"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	NextRunAt string `json:"nextRunAt,omitempty"`
}

type Transaction struct {
	ID          string      `json:"id"`
	EntityID    string      `json:"entityId"`
	Source      string      `json:"source"`
	Kind        string      `json:"kind"`
	Type        string      `json:"type"`
	Status      string      `json:"status"`
	AmountCents int64       `json:"amountCents"`
	Date        string      `json:"date"`
	Category    string      `json:"category"`
	Notes       string      `json:"notes,omitempty"`
	Payee       string      `json:"payee,omitempty"`
	Recurrence  *Recurrence `json:"recurrence,omitempty"`
	CreatedBy   string      `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type IncomeSource struct {
	ID          string    `json:"id"`
	BudgetID    string    `json:"budgetId"`
	EntityID    string    `json:"entityId"`
	Name        string    `json:"name"`
	AmountCents int64     `json:"amountCents"`
	Cadence     string    `json:"cadence"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AccountRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

type RecurringExpense struct {
	ID              string      `json:"id"`
	BudgetID        string      `json:"budgetId"`
	EntityID        string      `json:"entityId"`
	AccountID       string      `json:"accountId,omitempty"`
	Name            string      `json:"name"`
	AmountCents     int64       `json:"amountCents"`
	Cadence         string      `json:"cadence"`
	Category        string      `json:"category,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	PaidFromAccount *AccountRef `json:"paidFromAccount,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type Budget struct {
	ID                string             `json:"id"`
	EntityID          string             `json:"entityId"`
	Name              string             `json:"name"`
	Period            string             `json:"period"`
	EffectiveDate     string             `json:"effectiveDate"`
	Status            string             `json:"status"`
	IncomeSources     []IncomeSource     `json:"incomeSources"`
	RecurringExpenses []RecurringExpense `json:"recurringExpenses"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

type Document struct {
	ID                  string    `json:"id"`
	EntityID            string    `json:"entityId"`
	FileName            string    `json:"fileName"`
	MimeType            string    `json:"mimeType"`
	SizeBytes           int64     `json:"sizeBytes"`
	StorageKey          string    `json:"storageKey"`
	CloudFrontURL       string    `json:"cloudFrontUrl,omitempty"`
	SourceTransactionID string    `json:"sourceTransactionId,omitempty"`
	UploadedBy          string    `json:"uploadedBy"`
	CreatedAt           time.Time `json:"createdAt"`
}

type StorageConfig struct {
	ID                       string    `json:"id"`
	Bucket                   string    `json:"bucket"`
	Region                   string    `json:"region"`
	CloudFrontDistributionID string    `json:"cloudFrontDistributionId,omitempty"`
	CloudFrontDomain         string    `json:"cloudFrontDomain,omitempty"`
	UpdatedBy                string    `json:"updatedBy"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

type AuditEvent struct {
	ID          string            `json:"id"`
	EntityID    string            `json:"entityId,omitempty"`
	ActorUserID string            `json:"actorUserId"`
	ActorEmail  string            `json:"actorEmail"`
	Action      string            `json:"action"`
	ActionLabel string            `json:"actionLabel"`
	Target      string            `json:"target"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type RecordSnapshot struct {
	Table  string         `json:"table"`
	ID     string         `json:"id"`
	Exists bool           `json:"exists"`
	Data   map[string]any `json:"data"`
}

type EntitySummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
}

type AuditEventDetail struct {
	Event          AuditEvent       `json:"event"`
	TargetType     string           `json:"targetType,omitempty"`
	TargetRecord   *RecordSnapshot  `json:"targetRecord"`
	RelatedRecords []RecordSnapshot `json:"relatedRecords"`
	Entity         *EntitySummary   `json:"entity"`
}

package ledgerv1

// UserService

type WhoAmIRequest struct{}

type WhoAmIResponse struct {
	User User `json:"user"`
}

// EntityService

type CreateEntityRequest struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Address     *Address `json:"address"`
	Currency    string   `json:"currency"`
	Description string   `json:"description,omitempty"`
}

type CreateEntityResponse struct {
	Entity Entity `json:"entity"`
}

type UpdateEntityRequest struct {
	EntityID    string   `json:"entityId"`
	Name        string   `json:"name"`
	Address     *Address `json:"address"`
	Currency    string   `json:"currency"`
	Description string   `json:"description,omitempty"`
}

type UpdateEntityResponse struct {
	Entity Entity `json:"entity"`
}

type GetEntityRequest struct {
	EntityID string `json:"entityId"`
}

type GetEntityResponse struct {
	Entity Entity `json:"entity"`
}

type ListEntitiesRequest struct{}

type EntityWithMembership struct {
	Entity     Entity     `json:"entity"`
	Membership Membership `json:"membership"`
}

type ListEntitiesResponse struct {
	Entities []EntityWithMembership `json:"entities"`
}

// MembershipService

type GetMembershipRequest struct {
	EntityID string `json:"entityId"`
}

type GetMembershipResponse struct {
	Membership Membership `json:"membership"`
}

type ListMembersRequest struct {
	EntityID string `json:"entityId"`
}

type ListMembersResponse struct {
	Members []Membership `json:"members"`
}

// InvitationService

type CreateInvitationRequest struct {
	EntityID string `json:"entityId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type CreateInvitationResponse struct {
	Invitation Invitation `json:"invitation"`
	// Created is false when a pending invitation already existed and was returned unchanged.
	Created bool `json:"created"`
}

type AcceptInvitationRequest struct {
	InvitationID string `json:"invitationId"`
}

type AcceptInvitationResponse struct {
	Invitation Invitation `json:"invitation"`
	Membership Membership `json:"membership"`
}

type RevokeInvitationRequest struct {
	InvitationID string `json:"invitationId"`
}

type RevokeInvitationResponse struct {
	Invitation Invitation `json:"invitation"`
}

type ListEntityInvitationsRequest struct {
	EntityID string `json:"entityId"`
}

type ListMyInvitationsRequest struct{}

type ListInvitationsResponse struct {
	Invitations []Invitation `json:"invitations"`
}

// AccountService

type CreateAccountRequest struct {
	EntityID        string `json:"entityId"`
	Name            string `json:"name"`
	Currency        string `json:"currency"`
	Source          string `json:"source"`
	InstitutionName string `json:"institutionName,omitempty"`
	PlaidAccountID  string `json:"plaidAccountId,omitempty"`
}

type CreateAccountResponse struct {
	Account Account `json:"account"`
}

type ListAccountsRequest struct {
	EntityID string `json:"entityId"`
}

type ListAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// BudgetService

type CreateBudgetRequest struct {
	EntityID      string `json:"entityId"`
	Name          string `json:"name"`
	Period        string `json:"period"`
	EffectiveDate string `json:"effectiveDate"`
}

type CreateBudgetResponse struct {
	BudgetID string `json:"budgetId"`
}

type ListBudgetsRequest struct {
	EntityID string `json:"entityId"`
}

type ListBudgetsResponse struct {
	Budgets []Budget `json:"budgets"`
}

type GetBudgetRequest struct {
	BudgetID string `json:"budgetId"`
}

type GetBudgetResponse struct {
	Budget Budget `json:"budget"`
}

type IncomeSourceInput struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amountCents"`
	Cadence     string `json:"cadence"`
	Notes       string `json:"notes,omitempty"`
}

type AddIncomeSourceRequest struct {
	BudgetID string            `json:"budgetId"`
	Input    IncomeSourceInput `json:"input"`
}

type UpdateIncomeSourceRequest struct {
	IncomeSourceID string            `json:"incomeSourceId"`
	Input          IncomeSourceInput `json:"input"`
}

type RemoveIncomeSourceRequest struct {
	IncomeSourceID string `json:"incomeSourceId"`
}

type RecurringExpenseInput struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amountCents"`
	Cadence     string `json:"cadence"`
	AccountID   string `json:"accountId,omitempty"`
	Category    string `json:"category,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type AddRecurringExpenseRequest struct {
	BudgetID string                `json:"budgetId"`
	Input    RecurringExpenseInput `json:"input"`
}

type RemoveRecurringExpenseRequest struct {
	RecurringExpenseID string `json:"recurringExpenseId"`
}

type LineItemResponse struct {
	ID string `json:"id"`
}

// TransactionService

type CreateTransactionRequest struct {
	EntityID    string      `json:"entityId"`
	Kind        string      `json:"kind"`
	Type        string      `json:"type"`
	Status      string      `json:"status"`
	AmountCents int64       `json:"amountCents"`
	Date        string      `json:"date"`
	Category    string      `json:"category"`
	Payee       string      `json:"payee,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Recurrence  *Recurrence `json:"recurrence,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

type ListTransactionsRequest struct {
	EntityID string `json:"entityId"`
}

type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// DocumentService

type RecordUploadedDocumentRequest struct {
	EntityID            string `json:"entityId"`
	FileName            string `json:"fileName"`
	MimeType            string `json:"mimeType"`
	SizeBytes           int64  `json:"sizeBytes"`
	StorageKey          string `json:"storageKey"`
	CloudFrontURL       string `json:"cloudFrontUrl,omitempty"`
	SourceTransactionID string `json:"sourceTransactionId,omitempty"`
}

type RecordUploadedDocumentResponse struct {
	Document Document `json:"document"`
}

type ListDocumentsRequest struct {
	EntityID string `json:"entityId"`
}

type ListDocumentsResponse struct {
	Documents []Document `json:"documents"`
}

// StorageService

type UpsertStorageConfigRequest struct {
	Bucket                   string `json:"bucket"`
	Region                   string `json:"region"`
	CloudFrontDistributionID string `json:"cloudFrontDistributionId,omitempty"`
	CloudFrontDomain         string `json:"cloudFrontDomain,omitempty"`
}

type UpsertStorageConfigResponse struct {
	Config StorageConfig `json:"config"`
}

type GetStorageConfigRequest struct{}

type GetStorageConfigResponse struct {
	Config *StorageConfig `json:"config"`
}

// AuditService

type ListRecentAuditEventsRequest struct {
	Limit int `json:"limit,omitempty"`
}

type ListRecentAuditEventsResponse struct {
	Events []AuditEvent `json:"events"`
}

type GetAuditEventRequest struct {
	EventID string `json:"eventId"`
}

type GetAuditEventResponse struct {
	Detail AuditEventDetail `json:"detail"`
}

type RecordAuditEventRequest struct {
	EntityID string            `json:"entityId,omitempty"`
	Action   string            `json:"action"`
	Target   string            `json:"target"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type RecordAuditEventResponse struct {
	Event AuditEvent `json:"event"`
}

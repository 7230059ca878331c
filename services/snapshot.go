package services

// Snapshot types consumed by the aggregation engine and the report
// renderers. All collections are read-only for the duration of one
// aggregation/report cycle; mutation happens through the API layer and
// a fresh snapshot is loaded on the next cycle.
//
// Budget, TotalSpent and Total fields are typed `any` because the
// upstream data historically stores them as formatted strings
// ("1,250,000") as often as numbers. CleanNumber is the single place
// where they become float64, so the live dashboard and the generated
// reports can never disagree.

// Project statuses.
const (
	ProjectStatusActive   = "active"
	ProjectStatusPaused   = "paused"
	ProjectStatusFinished = "finished"
)

// Quote statuses. Everything except "pending" counts as in-flight or
// terminal; only "pending" quotes appear in the pending-sales KPI.
const (
	QuoteStatusPending   = "pending"
	QuoteStatusApproved  = "approved"
	QuoteStatusEnRoute   = "en_route"
	QuoteStatusDelivered = "delivered"
	QuoteStatusCancelled = "cancelled"
)

// Purchase order statuses.
const (
	PurchaseStatusPending  = "pending"
	PurchaseStatusReceived = "received"
)

type Project struct {
	ID            string
	Name          string
	Location      string
	Status        string
	Progress      int // physical progress, 0-100
	Budget        any // number or formatted string
	TotalSpent    any // number or formatted string
	ClientName    string
	AssignedNames string
	StartDate     string
	Lat           float64
	Lng           float64
}

type InventoryItem struct {
	ID       string
	Code     string
	Name     string
	Category string
	Stock    int
	MinStock int
	Unit     string
	Price    float64
}

type QuoteItem struct {
	Code          string
	ProductName   string
	Quantity      float64
	PriceSnapshot float64
}

type Quote struct {
	ID          string
	ClientName  string
	ClientEmail string
	SellerName  string
	ProjectID   string
	Status      string
	Total       any // number or formatted string
	Items       []QuoteItem
	CreatedDate string
}

type PurchaseOrder struct {
	ID           string
	SupplierName string
	Status       string
	Total        any // number or formatted string
	CreatedDate  string
}

// MonthlyBucket holds one calendar month of financial movement. Profit
// may be pre-computed upstream; when it is absent the engine derives it
// as Sales - Purchases.
type MonthlyBucket struct {
	Month     string
	Year      int
	Sales     any
	Purchases any
	Profit    any
	HasProfit bool
}

type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Role          string
	Occupation    string
	Phone         string
	NSS           string
	Salary        any // number or formatted string
	PaymentPeriod string
	StartDate     string
	VacationDays  int
}

// Snapshot bundles the in-memory collections one aggregation cycle
// operates on.
type Snapshot struct {
	Projects  []Project
	Inventory []InventoryItem
	Quotes    []Quote
	Purchases []PurchaseOrder
	Buckets   []MonthlyBucket
	Employees []Employee
}

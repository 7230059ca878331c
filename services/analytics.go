// Package services provides the aggregation engine and the document
// renderers for the back-office dashboard and its reports.
package services

import "sort"

// StatusBreakdown is the project count per lifecycle status.
type StatusBreakdown struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Paused   int `json:"paused"`
	Finished int `json:"finished"`
}

// BudgetHealth is the portfolio-wide spend vs. authorized budget.
// HealthPercent is intentionally unclamped: >100 signals overage.
type BudgetHealth struct {
	TotalBudget   float64 `json:"totalBudget"`
	TotalSpent    float64 `json:"totalSpent"`
	HealthPercent float64 `json:"healthPercent"`
}

// PendingSalesSummary lists the quotes still awaiting closure.
type PendingSalesSummary struct {
	Items       []Quote `json:"items"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

// PendingPurchasesSummary lists supplier orders not yet received.
type PendingPurchasesSummary struct {
	Items []PurchaseOrder `json:"items"`
	Count int             `json:"count"`
}

// ProgressEntry is one row of the top-progress ranking. Name is
// truncated for chart axes; FullName keeps the original for detail
// views.
type ProgressEntry struct {
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Progress int    `json:"progress"`
}

// MonthFinancials is the snapshot of a single calendar month.
type MonthFinancials struct {
	Sales     float64 `json:"sales"`
	Purchases float64 `json:"purchases"`
	Profit    float64 `json:"profit"`
}

// StatusCounts tallies projects per status.
func StatusCounts(projects []Project) StatusBreakdown {
	b := StatusBreakdown{Total: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case ProjectStatusActive:
			b.Active++
		case ProjectStatusPaused:
			b.Paused++
		case ProjectStatusFinished:
			b.Finished++
		}
	}
	return b
}

// AverageProgress returns the simple (unweighted) mean of per-project
// progress, rounded to the nearest integer. An empty portfolio yields 0.
func AverageProgress(projects []Project) int {
	if len(projects) == 0 {
		return 0
	}
	total := 0
	for _, p := range projects {
		total += p.Progress
	}
	return int(float64(total)/float64(len(projects)) + 0.5)
}

// FinancialHealth sums authorized budget and actual spend across the
// portfolio and derives the utilization percentage. A zero total budget
// yields HealthPercent 0, never Inf or NaN.
func FinancialHealth(projects []Project) BudgetHealth {
	var h BudgetHealth
	for _, p := range projects {
		h.TotalBudget += CleanNumber(p.Budget)
		h.TotalSpent += CleanNumber(p.TotalSpent)
	}
	if h.TotalBudget > 0 {
		h.HealthPercent = h.TotalSpent / h.TotalBudget * 100
	}
	return h
}

// LowStock returns every item at or below its minimum threshold.
// The boundary is inclusive: stock == min_stock is already an alert.
func LowStock(items []InventoryItem) []InventoryItem {
	var low []InventoryItem
	for _, it := range items {
		if it.Stock <= it.MinStock {
			low = append(low, it)
		}
	}
	return low
}

// StockStatusCritical is the sentinel the spreadsheet renderer keys row
// highlighting on.
const StockStatusCritical = "CRITICAL"

// StockStatusOK marks an item above its minimum threshold.
const StockStatusOK = "OK"

// StockStatus classifies one inventory item against its threshold.
func StockStatus(it InventoryItem) string {
	if it.Stock <= it.MinStock {
		return StockStatusCritical
	}
	return StockStatusOK
}

// PendingSales filters quotes with status exactly "pending" and sums
// their totals. Approved/en-route/delivered/cancelled quotes are out.
func PendingSales(quotes []Quote) PendingSalesSummary {
	var s PendingSalesSummary
	for _, q := range quotes {
		if q.Status != QuoteStatusPending {
			continue
		}
		s.Items = append(s.Items, q)
		s.TotalAmount += CleanNumber(q.Total)
	}
	s.Count = len(s.Items)
	return s
}

// PendingPurchases filters supplier orders that have not been received
// yet (any status other than "received").
func PendingPurchases(orders []PurchaseOrder) PendingPurchasesSummary {
	var s PendingPurchasesSummary
	for _, o := range orders {
		if o.Status == PurchaseStatusReceived {
			continue
		}
		s.Items = append(s.Items, o)
	}
	s.Count = len(s.Items)
	return s
}

// maxChartNameLen is the widest project name a chart axis can show
// before the label gets truncated with an ellipsis.
const maxChartNameLen = 15

// TopProgress ranks projects by physical progress, descending. Ties
// keep their original relative order (stable sort) and the result is
// truncated to n entries.
func TopProgress(projects []Project, n int) []ProgressEntry {
	if n <= 0 {
		n = 5
	}
	ranked := make([]Project, len(projects))
	copy(ranked, projects)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Progress > ranked[j].Progress
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	entries := make([]ProgressEntry, 0, len(ranked))
	for _, p := range ranked {
		// Truncate by runes so accented names keep valid UTF-8.
		name := p.Name
		if runes := []rune(name); len(runes) > maxChartNameLen {
			name = string(runes[:maxChartNameLen]) + "..."
		}
		entries = append(entries, ProgressEntry{
			Name:     name,
			FullName: p.Name,
			Progress: p.Progress,
		})
	}
	return entries
}

// MonthSnapshot looks up one month in the financial buckets. A missing
// month yields an all-zero snapshot. Profit uses the pre-computed value
// when the bucket carries one, otherwise Sales - Purchases.
func MonthSnapshot(buckets []MonthlyBucket, monthName string) MonthFinancials {
	for _, b := range buckets {
		if b.Month != monthName {
			continue
		}
		m := MonthFinancials{
			Sales:     CleanNumber(b.Sales),
			Purchases: CleanNumber(b.Purchases),
		}
		if b.HasProfit {
			m.Profit = CleanNumber(b.Profit)
		} else {
			m.Profit = m.Sales - m.Purchases
		}
		return m
	}
	return MonthFinancials{}
}

// DashboardMetrics is the full KPI set shared by the on-screen
// dashboard and the BI report, derived from one snapshot with one set
// of formulas.
type DashboardMetrics struct {
	Statuses         StatusBreakdown         `json:"statuses"`
	AvgProgress      int                     `json:"avgProgress"`
	Health           BudgetHealth            `json:"health"`
	LowStockItems    []InventoryItem         `json:"lowStockItems"`
	LowStockCount    int                     `json:"lowStockCount"`
	PendingSales     PendingSalesSummary     `json:"pendingSales"`
	PendingPurchases PendingPurchasesSummary `json:"pendingPurchases"`
	TopProjects      []ProgressEntry         `json:"topProjects"`
	Month            MonthFinancials         `json:"month"`
	MonthName        string                  `json:"monthName"`
	Year             int                     `json:"year"`
}

// BuildMetrics runs the whole engine over one snapshot for the given
// reporting period.
func BuildMetrics(snap Snapshot, monthName string, year int) DashboardMetrics {
	low := LowStock(snap.Inventory)
	return DashboardMetrics{
		Statuses:         StatusCounts(snap.Projects),
		AvgProgress:      AverageProgress(snap.Projects),
		Health:           FinancialHealth(snap.Projects),
		LowStockItems:    low,
		LowStockCount:    len(low),
		PendingSales:     PendingSales(snap.Quotes),
		PendingPurchases: PendingPurchases(snap.Purchases),
		TopProjects:      TopProgress(snap.Projects, 5),
		Month:            MonthSnapshot(snap.Buckets, monthName),
		MonthName:        monthName,
		Year:             year,
	}
}
